// Package models содержит типы данных, общие для генератора, форматтера и транспорта.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Locale определяет набор таблиц и шаблонов, используемых при генерации
type Locale string

const (
	// LocaleArabic используется по умолчанию
	LocaleArabic Locale = "ar"
	// LocaleEnglish английская локаль
	LocaleEnglish Locale = "en"
)

// DefaultLocale возвращается, если локаль в команде не указана
const DefaultLocale = LocaleArabic

// Locales перечисляет все поддерживаемые локали
var Locales = []Locale{LocaleArabic, LocaleEnglish}

// ParseLocale разбирает токен локали без учёта регистра
func ParseLocale(s string) (Locale, error) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("%w: unsupported locale %q", ErrInvalidArgument, s)
	}
	return l, nil
}

// Valid сообщает, поддерживается ли локаль
func (l Locale) Valid() bool {
	return l == LocaleArabic || l == LocaleEnglish
}

func (l Locale) String() string {
	return string(l)
}

// Format определяет представление результата
type Format string

const (
	// FormatText отдаёт читаемый текст для отправки сообщением
	FormatText Format = "text"
	// FormatJSON отдаёт структурированный документ
	FormatJSON Format = "json"
	// FormatCSV отдаёт табличный документ
	FormatCSV Format = "csv"
)

// DefaultFormat возвращается, если формат в команде не указан
const DefaultFormat = FormatText

// ParseFormat разбирает токен формата без учёта регистра
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatText, FormatJSON, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("%w: unsupported format %q", ErrInvalidArgument, s)
}

// IsFile сообщает, отправляется ли результат вложением
func (f Format) IsFile() bool {
	return f == FormatJSON || f == FormatCSV
}

// Extension возвращает расширение файла для формата
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	default:
		return "txt"
	}
}

// ContentType возвращает MIME-тип результата
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json; charset=utf-8"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func (f Format) String() string {
	return string(f)
}

// Gender задаёт пол сгенерированного человека
type Gender int

const (
	GenderMale Gender = iota
	GenderFemale
)

var genderLabels = map[Locale][2]string{
	LocaleArabic:  {"ذكر", "أنثى"},
	LocaleEnglish: {"Male", "Female"},
}

// Valid сообщает, является ли значение известным полом
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Label возвращает подпись пола для локали. Для неизвестного пола пустая строка.
func (g Gender) Label(l Locale) string {
	if !g.Valid() {
		return ""
	}
	labels, ok := genderLabels[l]
	if !ok {
		labels = genderLabels[DefaultLocale]
	}
	return labels[g]
}

// GenderFromLabel восстанавливает пол по подписи любой локали
func GenderFromLabel(label string) (Gender, bool) {
	for _, labels := range genderLabels {
		for i, l := range labels {
			if l == label {
				return Gender(i), true
			}
		}
	}
	return 0, false
}

// Record описывает одного вымышленного человека
type Record struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	Gender   string `json:"gender"`
	Age      int    `json:"age"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Job      string `json:"job"`
	City     string `json:"city"`
	Address  string `json:"address"`
}

// RecordFields перечисляет имена полей записи в порядке сериализации
var RecordFields = []string{"id", "full_name", "gender", "age", "email", "phone", "job", "city", "address"}

// Batch содержит упорядоченный набор записей одного запроса
type Batch struct {
	GeneratedAt time.Time
	Locale      Locale
	Format      Format
	People      []Record
}

// Count возвращает количество записей в пакете
func (b Batch) Count() int {
	return len(b.People)
}

// Request содержит разобранную команду генерации
type Request struct {
	Count  int
	Format Format
	Locale Locale
	// Clamped выставляется, если запрошенное количество превышало лимит
	Clamped bool
	// Ignored содержит нераспознанные токены команды
	Ignored []string
}

// Usage описывает один выполненный запрос генерации
type Usage struct {
	ChatID    int64     `json:"chat_id"`
	Source    string    `json:"source"`
	Count     int       `json:"count"`
	Format    Format    `json:"format"`
	Locale    Locale    `json:"locale"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats содержит агрегированную статистику использования
type Stats struct {
	Requests int            `json:"requests"`
	People   int            `json:"people"`
	ByFormat map[string]int `json:"by_format"`
	ByLocale map[string]int `json:"by_locale"`
}
