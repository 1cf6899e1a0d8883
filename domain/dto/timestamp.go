package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// วันเวลาที่ไม่มี zone ถือเป็นเวลาท้องถิ่นของ server
var localLayouts = []string{
	"2006-01-02T15:04:05",
	time.DateTime,
}

// Timestamp รับได้ทั้ง epoch milliseconds (number หรือ string ตัวเลข), RFC 3339,
// วันที่อย่างเดียว (2006-01-02, UTC) และวันเวลาที่ไม่มี zone
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] != '"' {
		var ms json.Number
		if err := json.Unmarshal(data, &ms); err != nil {
			return fmt.Errorf("invalid timestamp %s: %w", data, err)
		}
		return t.setMillis(ms.String())
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		return fmt.Errorf("empty timestamp")
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return t.setMillis(s)
	}

	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		t.Time = parsed
		return nil
	}
	// วันที่อย่างเดียวถือเป็นเที่ยงคืน UTC
	if date, derr := time.Parse(time.DateOnly, s); derr == nil {
		t.Time = date
		return nil
	}
	for _, layout := range localLayouts {
		if local, lerr := time.ParseInLocation(layout, s, time.Local); lerr == nil {
			t.Time = local
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q: %w", s, err)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(t.UnixMilli(), 10)), nil
}

func (t *Timestamp) setMillis(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return fmt.Errorf("invalid timestamp %q: out of range", s)
	}
	t.Time = time.UnixMilli(int64(f))
	return nil
}
