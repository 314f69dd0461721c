package config

// Canned assistant texts used when the conversation runs without the backend
const (
	WelcomeMessage = "¡Hola! Soy tu asistente personal. Me gustaría conocerte mejor para ayudarte a establecer hábitos y metas. ¿Podrías contarme un poco sobre ti, tus objetivos personales, y en qué áreas te gustaría mejorar?"
	OfflineReply   = "Lo siento, estoy en modo offline. No puedo procesar tu solicitud en este momento. Por favor, intenta más tarde cuando la conexión con el servidor se restablezca."
	SendFailedText = "No se pudo enviar el mensaje. Por favor, intenta de nuevo."
)

// Store keys
const (
	DocumentKey = "session"
)

// Store drivers
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)
