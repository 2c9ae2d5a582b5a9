// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

var (
	// ErrInvalidDurationSpec is returned when a lifetime string is not of the
	// form <integer><unit>.
	ErrInvalidDurationSpec = errors.New("invalid duration spec")

	// ErrUnsupportedUnit is returned when the unit suffix is not one of
	// s, m, h or d.
	ErrUnsupportedUnit = errors.New("unsupported duration unit")
)

var durationUnits = map[byte]time.Duration{
	's': time.Second,
	'm': time.Minute,
	'h': time.Hour,
	'd': 24 * time.Hour,
}

// ParseDurationSpec parses token lifetimes such as "15m" or "7d".
//
// The accepted grammar is exactly <non-negative integer><unit> where unit is
// one of s (seconds), m (minutes), h (hours) or d (days). Unlike
// [time.ParseDuration] it supports days and rejects compound values like
// "1h30m". Amounts whose product with the unit does not fit in a
// [time.Duration] are rejected with [ErrInvalidDurationSpec].
func ParseDurationSpec(spec string) (time.Duration, error) {
	if len(spec) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDurationSpec, spec)
	}

	amountPart, unitPart := spec[:len(spec)-1], spec[len(spec)-1]

	unit, ok := durationUnits[unitPart]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedUnit, spec)
	}

	amount, err := strconv.ParseUint(amountPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDurationSpec, spec)
	}
	if amount > uint64(math.MaxInt64/int64(unit)) {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidDurationSpec, spec)
	}

	return time.Duration(amount) * unit, nil
}
