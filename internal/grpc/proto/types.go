// Package proto содержит сообщения и описание gRPC сервиса генерации людей
package proto

// GenerateRequest описывает запрос на генерацию пакета
type GenerateRequest struct {
	Count  int32  `json:"count"`
	Format string `json:"format,omitempty"`
	Locale string `json:"locale,omitempty"`
}

// GenerateResponse содержит сгенерированный пакет. Для текстового формата
// заполняется Text, для файловых Data и Filename.
type GenerateResponse struct {
	Count       int32  `json:"count"`
	Format      string `json:"format"`
	Locale      string `json:"locale"`
	Clamped     bool   `json:"clamped"`
	Text        string `json:"text,omitempty"`
	Data        []byte `json:"data,omitempty"`
	Filename    string `json:"filename,omitempty"`
	ContentType string `json:"content_type"`
}

// GetStatsRequest описывает запрос статистики
type GetStatsRequest struct{}

// GetStatsResponse содержит статистику использования
type GetStatsResponse struct {
	Requests int64            `json:"requests"`
	People   int64            `json:"people"`
	ByFormat map[string]int64 `json:"by_format"`
	ByLocale map[string]int64 `json:"by_locale"`
}
