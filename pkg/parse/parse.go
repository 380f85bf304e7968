package parse

import (
	"math"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/outofforest/objectid/pkg/oid"
)

// ID parses hex form of object identifier.
func ID(id string) oid.ID {
	return lo.Must(oid.FromHex(id))
}

// Timestamp parses identifier timestamp given as Unix seconds or RFC 3339 time.
func Timestamp(ts string) (uint32, error) {
	seconds, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		t, err2 := time.Parse(time.RFC3339, ts)
		if err2 != nil {
			return 0, errors.Errorf("invalid timestamp %q, expected Unix seconds or RFC 3339 time", ts)
		}
		seconds = t.Unix()
	}
	if seconds < 0 || seconds > math.MaxUint32 {
		return 0, errors.Errorf("timestamp %q out of range", ts)
	}
	return uint32(seconds), nil
}
