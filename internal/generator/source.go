package generator

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// Source отдаёт случайные числа. Реализации должны быть безопасны
// для конкурентного использования.
type Source interface {
	// Intn возвращает случайное число в диапазоне [0, n)
	Intn(n int) (int, error)
}

// CryptoSource использует crypto/rand
type CryptoSource struct{}

// Intn возвращает криптографически случайное число в диапазоне [0, n)
func (CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errors.New("crypto source: n must be positive")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
