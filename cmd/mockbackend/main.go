// Command mockbackend is a stand-in for the upstream account backend used
// during local development of the console API. It serves canned tariff data
// and simulates the registration, login, and AI config endpoints, including
// the failure shapes the real backend produces.
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultPort = "8000"

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Errors  any    `json:"errors,omitempty"`
	Data    any    `json:"data,omitempty"`
	User    any    `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
}

type tariff struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Currency string   `json:"currency"`
	Features []string `json:"features"`
}

var tariffs = []tariff{
	{
		ID: 1, Name: "basic", Price: 199000, Currency: "UZS",
		Features: []string{
			"messages_limit_10000",
			"leads_limit_1000",
			"instagram_integration",
			"amocrm_integration",
			"telegram_integration",
			"task_automation",
			"ai_support_24_7",
			"multilingual_support",
			"analytics_panel",
		},
	},
	{
		ID: 2, Name: "standard", Price: 399000, Currency: "UZS",
		Features: []string{
			"messages_limit_30000",
			"leads_limit_3000",
			"instagram_integration",
			"amocrm_integration",
			"telegram_integration",
			"task_automation",
			"ai_support_24_7",
			"multilingual_support",
			"analytics_panel",
			"priority_support",
			"unlimited_integrations",
		},
	},
	{
		ID: 3, Name: "premium", Price: 599000, Currency: "UZS",
		Features: []string{
			"messages_limit_50000",
			"leads_limit_5000",
			"instagram_integration",
			"amocrm_integration",
			"telegram_integration",
			"task_automation",
			"ai_support_24_7",
			"multilingual_support",
			"analytics_panel",
			"account_management",
			"advanced_analytics",
			"custom_ai_training",
		},
	},
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func randomSuffix() string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 9)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func handleTariffs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: tariffs})
}

func handleRegister(w http.ResponseWriter, r *http.Request) {
	var data struct {
		Name                 string `json:"name"`
		Email                string `json:"email"`
		Password             string `json:"password"`
		PasswordConfirmation string `json:"password_confirmation"`
		TariffPlanID         int    `json:"tariff_plan_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Error: "Invalid JSON"})
		return
	}

	// Simulated duplicate account
	if data.Email == "test@existing.com" {
		writeJSON(w, http.StatusBadRequest, envelope{
			Success: false,
			Error:   "Email allaqachon mavjud",
		})
		return
	}

	if data.TariffPlanID < 1 || data.TariffPlanID > 3 {
		writeJSON(w, http.StatusBadRequest, envelope{
			Success: false,
			Error:   "Tariff rejasini tanlash majburiy (1, 2, yoki 3)",
		})
		return
	}

	// Laravel-style 422 with a per-field errors map
	if data.PasswordConfirmation == "" || data.Password != data.PasswordConfirmation {
		writeJSON(w, http.StatusUnprocessableEntity, envelope{
			Success: false,
			Errors: map[string][]string{
				"password": {"The password field confirmation does not match."},
			},
		})
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Muvaffaqiyatli ro'yxatdan o'tdingiz",
		User: map[string]any{
			"id":             "user_" + randomSuffix(),
			"name":           data.Name,
			"email":          data.Email,
			"tariff_plan_id": data.TariffPlanID,
		},
		Token: "jwt_token_" + randomSuffix(),
	})
}

func handleLogin(w http.ResponseWriter, r *http.Request) {
	var data struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Error: "Invalid JSON"})
		return
	}

	if data.Email == "" || data.Password == "" {
		writeJSON(w, http.StatusUnauthorized, envelope{
			Success: false,
			Error:   "Email yoki parol noto'g'ri",
		})
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Muvaffaqiyatli kirdingiz",
		User: map[string]any{
			"id":    "user_" + randomSuffix(),
			"email": data.Email,
		},
		Token: "jwt_token_" + randomSuffix(),
	})
}

func handleAIConfig(w http.ResponseWriter, r *http.Request) {
	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Error: "Invalid JSON"})
		return
	}

	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		writeJSON(w, http.StatusUnauthorized, envelope{
			Success: false,
			Error:   "Authorization token kerak",
		})
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "AI sozlamalari muvaffaqiyatli saqlandi",
	})
}

func main() {
	port := os.Getenv("MOCK_BACKEND_PORT")
	if port == "" {
		port = defaultPort
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tariffs", handleTariffs)
	mux.HandleFunc("POST /api/register", handleRegister)
	mux.HandleFunc("POST /api/login", handleLogin)
	mux.HandleFunc("POST /api/ai-config", handleAIConfig)
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, envelope{
			Success: false,
			Error:   "Endpoint topilmadi",
		})
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           corsMiddleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Printf("Mock backend listening on :%s\n", port)
	if err := srv.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "mock backend: %v\n", err)
		os.Exit(1)
	}
}
