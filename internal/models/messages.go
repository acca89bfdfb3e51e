package models

// User-facing messages, localized for the Uzbek market the product ships in.
// These strings are part of the API contract with the frontend: the register
// and setup wizards match on them verbatim.
const (
	MsgContentTypeRequired = "Content-Type application/json bo'lishi kerak"
	MsgMalformedJSON       = "Noto'g'ri JSON format"
	MsgInternalError       = "Server xatoligi yuz berdi"
	MsgAuthRequired        = "Avtorizatsiya talab qilinadi"
	MsgTooManyRequests     = "Juda ko'p so'rovlar yuborildi. Keyinroq qayta urinib ko'ring."

	// Registration
	MsgAllFieldsRequired  = "Barcha maydonlar kiritilishi shart"
	MsgNameInvalid        = "To'liq ism kamida 2 ta harfdan iborat bo'lishi kerak"
	MsgEmailInvalid       = "Email manzil noto'g'ri formatda"
	MsgCompanyNameInvalid = "Kompaniya nomi kamida 2 ta belgidan iborat bo'lishi kerak"
	MsgPasswordTooShort   = "Parol kamida 6 belgi bo'lishi kerak"
	MsgPasswordTooLong    = "Parol 128 belgidan oshmasligi kerak"
	MsgTariffRequired     = "Tariff rejasini tanlash majburiy"
	MsgRegisterSuccess    = "Muvaffaqiyatli ro'yxatdan o'tdingiz"
	MsgRegisterFailed     = "Ro'yxatdan o'tishda xatolik yuz berdi"

	// Login
	MsgLoginFailed = "Email yoki parol noto'g'ri"

	// AI configuration
	MsgAIContextRequired = "AI yo'riqnomasi kiritilishi shart"
	MsgInvalidShape      = "Ma'lumotlar formati noto'g'ri"
	MsgAIContextTooShort = "AI yo'riqnomasi kamida 30 belgi bo'lishi kerak"
	MsgTooManyEmbeddings = "Maksimal 20 ta ma'lumot qo'shish mumkin"
	MsgEmbeddingTooShort = "Har bir ma'lumot kamida 10 belgi bo'lishi kerak"
	MsgAIConfigSaved     = "AI sozlamalari muvaffaqiyatli saqlandi"
	MsgAIConfigFailed    = "AI sozlamalarni saqlashda xatolik yuz berdi"

	// Tariffs
	MsgTariffsFailed = "Tariff planlarni olishda xatolik yuz berdi"

	// Upstream transport failures
	MsgBackendDown        = "Backend server ishlamayapti"
	MsgBackendUnreachable = "Backend server bilan bog'lanib bo'lmadi. Server ishlaganligini tekshiring."
)
