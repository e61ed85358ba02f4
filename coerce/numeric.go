package coerce

import (
	"strconv"

	"github.com/shopspring/decimal"
)

var (
	byteCodec = codec[uint8]{
		parse: func(s string) (uint8, error) {
			v, err := strconv.ParseUint(s, 10, 8)
			return uint8(v), err
		},
		format: func(v uint8) string { return strconv.FormatUint(uint64(v), 10) },
	}

	shortCodec = codec[int16]{
		parse: func(s string) (int16, error) {
			v, err := strconv.ParseInt(s, 10, 16)
			return int16(v), err
		},
		format: func(v int16) string { return strconv.FormatInt(int64(v), 10) },
	}

	int32Codec = codec[int32]{
		parse: func(s string) (int32, error) {
			v, err := strconv.ParseInt(s, 10, 32)
			return int32(v), err
		},
		format: func(v int32) string { return strconv.FormatInt(int64(v), 10) },
	}

	int64Codec = codec[int64]{
		parse:  func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) },
		format: func(v int64) string { return strconv.FormatInt(v, 10) },
	}

	intCodec = codec[int]{
		parse: func(s string) (int, error) {
			v, err := strconv.ParseInt(s, 10, strconv.IntSize)
			return int(v), err
		},
		format: strconv.Itoa,
	}

	float32Codec = codec[float32]{
		parse: func(s string) (float32, error) {
			v, err := strconv.ParseFloat(s, 32)
			return float32(v), err
		},
		format: func(v float32) string { return strconv.FormatFloat(float64(v), 'f', -1, 32) },
	}

	float64Codec = codec[float64]{
		parse:  func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
		format: func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
	}

	decimalCodec = codec[decimal.Decimal]{
		parse:  decimal.NewFromString,
		format: decimal.Decimal.String,
	}
)
