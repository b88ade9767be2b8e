// Package generator генерирует вымышленные персональные данные для двух локалей.
// Все случайные значения берутся из Source; по умолчанию это crypto/rand.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tempizhere/fakebot/internal/models"
)

const (
	// MaxBatchSize задаёт жёсткий лимит записей в одном пакете
	MaxBatchSize = 100

	minAge = 18
	maxAge = 70

	arPhoneMin = 10000000
	arPhoneMax = 99999999
)

var errEmptyTable = errors.New("empty data table")

// Generator создаёт записи по таблицам локалей. Не хранит изменяемого
// состояния и безопасен для конкурентного использования.
type Generator struct {
	src Source
}

// Option настраивает Generator
type Option func(*Generator)

// WithSource задаёт источник случайных чисел
func WithSource(src Source) Option {
	return func(g *Generator) {
		g.src = src
	}
}

// New создаёт генератор
func New(opts ...Option) *Generator {
	g := &Generator{src: CryptoSource{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Clamp ограничивает количество диапазоном [0, MaxBatchSize].
// Второе значение сообщает, было ли количество уменьшено.
func Clamp(count int) (int, bool) {
	switch {
	case count > MaxBatchSize:
		return MaxBatchSize, true
	case count < 0:
		return 0, false
	default:
		return count, false
	}
}

// GenerateBatch создаёт до MaxBatchSize записей с идентификаторами 1..n
func (g *Generator) GenerateBatch(ctx context.Context, count int, locale models.Locale) ([]models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !locale.Valid() {
		return nil, fmt.Errorf("%w: unsupported locale %q", models.ErrInvalidArgument, locale)
	}

	n, _ := Clamp(count)
	people := make([]models.Record, 0, n)
	for i := 1; i <= n; i++ {
		rec, err := g.Generate(i, locale)
		if err != nil {
			return nil, err
		}
		people = append(people, rec)
	}
	return people, nil
}

// Generate создаёт одну запись с заданным порядковым номером
func (g *Generator) Generate(index int, locale models.Locale) (models.Record, error) {
	if index < 1 {
		return models.Record{}, fmt.Errorf("%w: index must be positive, got %d", models.ErrInvalidArgument, index)
	}

	d := &draw{src: g.src}
	var rec models.Record
	switch locale {
	case models.LocaleArabic:
		rec = d.arabic()
	case models.LocaleEnglish:
		rec = d.english()
	default:
		return models.Record{}, fmt.Errorf("%w: unsupported locale %q", models.ErrInvalidArgument, locale)
	}
	if d.err != nil {
		return models.Record{}, fmt.Errorf("%w: %v", models.ErrGeneration, d.err)
	}

	rec.ID = index
	return rec, nil
}

// draw накапливает первую ошибку источника, чтобы не проверять каждый вызов
type draw struct {
	src Source
	err error
}

func (d *draw) intn(n int) int {
	if d.err != nil {
		return 0
	}
	if n <= 0 {
		d.err = errEmptyTable
		return 0
	}
	v, err := d.src.Intn(n)
	if err != nil {
		d.err = err
		return 0
	}
	if v < 0 || v >= n {
		d.err = fmt.Errorf("source returned %d outside [0, %d)", v, n)
		return 0
	}
	return v
}

// between возвращает число в диапазоне [lo, hi] включительно
func (d *draw) between(lo, hi int) int {
	return lo + d.intn(hi-lo+1)
}

func (d *draw) pick(s []string) string {
	if len(s) == 0 {
		if d.err == nil {
			d.err = errEmptyTable
		}
		return ""
	}
	return s[d.intn(len(s))]
}

func (d *draw) gender() models.Gender {
	return models.Gender(d.intn(2))
}

// digits заменяет каждый символ # случайной цифрой
func (d *draw) digits(pattern string) string {
	var b strings.Builder
	for _, r := range pattern {
		if r == '#' {
			b.WriteByte(byte('0' + d.intn(10)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (d *draw) arabic() models.Record {
	gender := d.gender()
	first := d.pick(arMaleFirstNames)
	if gender == models.GenderFemale {
		first = d.pick(arFemaleFirstNames)
	}
	city := d.pick(arCities)

	return models.Record{
		FullName: first + " " + d.pick(arLastNames),
		Gender:   gender.Label(models.LocaleArabic),
		Age:      d.between(minAge, maxAge),
		Email:    d.pick(arEmailWords) + "." + d.pick(arEmailWords) + strconv.Itoa(d.between(10, 99)) + "@" + d.pick(arEmailDomains),
		Phone:    arPhonePrefix + strconv.Itoa(d.between(arPhoneMin, arPhoneMax)),
		Job:      d.pick(arJobs),
		City:     city,
		Address:  fmt.Sprintf("%d %s، %s، %s %s", d.between(1, 9999), d.pick(arStreets), d.pick(arDistricts), city, d.digits("#####")),
	}
}

func (d *draw) english() models.Record {
	gender := d.gender()
	first := d.pick(enMaleFirstNames)
	if gender == models.GenderFemale {
		first = d.pick(enFemaleFirstNames)
	}
	last := d.pick(enLastNames)
	city := d.pick(enCities)

	return models.Record{
		FullName: first + " " + last,
		Gender:   gender.Label(models.LocaleEnglish),
		Age:      d.between(minAge, maxAge),
		Email:    d.englishEmail(first, last),
		Phone:    d.digits(d.pick(enPhoneFormats)),
		Job:      d.pick(enJobs),
		City:     city,
		Address: fmt.Sprintf("%d %s %s, %s, %s %s",
			d.between(100, 9999), d.pick(enStreetNames), d.pick(enStreetSuffixes),
			city, d.pick(enStates), d.digits("#####")),
	}
}

// englishEmail строит адрес из имени по одному из нескольких шаблонов
func (d *draw) englishEmail(first, last string) string {
	first = strings.ToLower(first)
	last = strings.ToLower(last)
	domain := d.pick(enEmailDomains)

	var local string
	switch d.intn(4) {
	case 0:
		local = first + "." + last
	case 1:
		if first != "" {
			local = first[:1]
		}
		local += last
	case 2:
		local = first + last + strconv.Itoa(d.between(10, 99))
	default:
		local = last + "." + first
	}
	return local + "@" + domain
}
