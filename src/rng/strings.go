package rng

import "fmt"

const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!#$%&()*+,-./:;<=>?@[]^_{|}~"
)

func BuildCharset(lowers, uppers, numbers, symbols bool) []byte {
	var b []byte
	if lowers {
		b = append(b, lowerChars...)
	}
	if uppers {
		b = append(b, upperChars...)
	}
	if numbers {
		b = append(b, digitChars...)
	}
	if symbols {
		b = append(b, symbolChars...)
	}
	return b
}

// String returns n characters drawn independently from charset.
func String(src Source, charset []byte, n int) (string, error) {
	if len(charset) == 0 {
		return "", ErrEmptyCharset
	}
	if n < 0 {
		return "", ErrNegativeSize
	}

	out := make([]byte, n)
	for i := range out {
		idx, err := Int(src, 0, len(charset))
		if err != nil {
			return "", err
		}
		out[i] = charset[idx]
	}
	return string(out), nil
}

// Bytes returns n raw bytes from src.
func Bytes(src Source, n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	buf := make([]byte, n)
	if _, err := NewReader(src).Read(buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntropy, err)
	}
	return buf, nil
}
