package models

// Request сообщение пользователя
type Request struct {
	Message string `json:"message"`
}

// Response ответ ассистента
type Response struct {
	Response string `json:"response"`
}
