// Package formatter сериализует пакет записей в текст, JSON или CSV.
package formatter

import (
	"bytes"
	"embed"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"text/template"
	"time"
	"unicode/utf8"

	"github.com/tempizhere/fakebot/internal/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	glyphMale   = "🧔"
	glyphFemale = "👩"
)

// Payload содержит результат форматирования
type Payload struct {
	// Text заполняется для текстового формата
	Text string
	// Data заполняется для файловых форматов
	Data        []byte
	Filename    string
	ContentType string
}

// Bytes возвращает содержимое независимо от формата
func (p Payload) Bytes() []byte {
	if p.Data != nil {
		return p.Data
	}
	return []byte(p.Text)
}

// Document описывает структуру JSON-документа
type Document struct {
	GeneratedAt string          `json:"generated_at"`
	Count       int             `json:"count"`
	Language    models.Locale   `json:"language"`
	Format      models.Format   `json:"format"`
	People      []models.Record `json:"people"`
}

// Formatter хранит разобранные шаблоны текстового отчёта
type Formatter struct {
	templates *template.Template
}

// New создаёт форматтер
func New() *Formatter {
	funcs := template.FuncMap{
		"glyph": glyph,
	}
	tmpl := template.Must(template.New("report").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))
	return &Formatter{templates: tmpl}
}

// Format сериализует пакет в формате batch.Format
func (f *Formatter) Format(batch models.Batch) (Payload, error) {
	if err := validateUTF8(batch.People); err != nil {
		return Payload{}, err
	}

	switch batch.Format {
	case models.FormatText:
		text, err := f.text(batch)
		if err != nil {
			return Payload{}, err
		}
		return Payload{Text: text, ContentType: batch.Format.ContentType()}, nil
	case models.FormatJSON:
		data, err := encodeJSON(batch)
		if err != nil {
			return Payload{}, err
		}
		return filePayload(batch, data), nil
	case models.FormatCSV:
		data, err := encodeCSV(batch.People)
		if err != nil {
			return Payload{}, err
		}
		return filePayload(batch, data), nil
	default:
		return Payload{}, fmt.Errorf("%w: unsupported format %q", models.ErrInvalidArgument, batch.Format)
	}
}

// Filename возвращает имя вложения: fake_people_<count>_<locale>.<ext>
func Filename(batch models.Batch) string {
	return fmt.Sprintf("fake_people_%d_%s.%s", batch.Count(), batch.Locale, batch.Format.Extension())
}

func filePayload(batch models.Batch, data []byte) Payload {
	return Payload{
		Data:        data,
		Filename:    Filename(batch),
		ContentType: batch.Format.ContentType(),
	}
}

func (f *Formatter) text(batch models.Batch) (string, error) {
	locale := batch.Locale
	if !locale.Valid() {
		return "", fmt.Errorf("%w: unsupported locale %q", models.ErrInvalidArgument, locale)
	}

	data := struct {
		Count  int
		People []models.Record
	}{
		Count:  batch.Count(),
		People: batch.People,
	}

	var buf bytes.Buffer
	if err := f.templates.ExecuteTemplate(&buf, "report."+locale.String()+".tmpl", data); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrEncoding, err)
	}
	return buf.String(), nil
}

func encodeJSON(batch models.Batch) ([]byte, error) {
	people := batch.People
	if people == nil {
		people = []models.Record{}
	}
	doc := Document{
		GeneratedAt: batch.GeneratedAt.Format(time.RFC3339),
		Count:       len(people),
		Language:    batch.Locale,
		Format:      models.FormatJSON,
		People:      people,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrEncoding, err)
	}
	return buf.Bytes(), nil
}

// encodeCSV всегда пишет строку заголовка, даже для пустого пакета
func encodeCSV(people []models.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(models.RecordFields); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrEncoding, err)
	}
	for _, p := range people {
		row := []string{
			strconv.Itoa(p.ID), p.FullName, p.Gender, strconv.Itoa(p.Age),
			p.Email, p.Phone, p.Job, p.City, p.Address,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrEncoding, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrEncoding, err)
	}
	return buf.Bytes(), nil
}

func validateUTF8(people []models.Record) error {
	for _, p := range people {
		for _, v := range []string{p.FullName, p.Gender, p.Email, p.Phone, p.Job, p.City, p.Address} {
			if !utf8.ValidString(v) {
				return fmt.Errorf("%w: record %d contains invalid UTF-8", models.ErrEncoding, p.ID)
			}
		}
	}
	return nil
}

func glyph(label string) string {
	if g, ok := models.GenderFromLabel(label); ok && g == models.GenderFemale {
		return glyphFemale
	}
	return glyphMale
}
