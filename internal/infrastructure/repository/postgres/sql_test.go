package postgres

import "testing"

func TestNullString(t *testing.T) {
	t.Run("keeps trimmed value", func(t *testing.T) {
		got := nullString("  Sweden ")
		if !got.Valid || got.String != "Sweden" {
			t.Fatalf("unexpected null string: %+v", got)
		}
	})

	t.Run("blank is null", func(t *testing.T) {
		if got := nullString("   "); got.Valid {
			t.Fatalf("expected null for blank, got %+v", got)
		}
	})
}

func TestNullPositiveInt(t *testing.T) {
	if got := nullPositiveInt(2015); !got.Valid || got.Int64 != 2015 {
		t.Fatalf("unexpected value: %+v", got)
	}
	if got := nullPositiveInt(0); got.Valid {
		t.Fatalf("zero must be null, got %+v", got)
	}
}

func TestNullInt64RoundTrips(t *testing.T) {
	toPar := -21
	stored := nullIntPtr(&toPar)
	if !stored.Valid || stored.Int64 != -21 {
		t.Fatalf("negative to-par must round-trip, got %+v", stored)
	}
	back := nullInt64ToIntPtr(stored)
	if back == nil || *back != -21 {
		t.Fatalf("unexpected round-trip value: %v", back)
	}

	if nullIntPtr(nil).Valid {
		t.Fatal("nil pointer must store null")
	}
	if nullInt64ToInt64Ptr(nullInt64Ptr(nil)) != nil {
		t.Fatal("null must read back as nil")
	}

	var earnings int64 = 0
	storedEarnings := nullInt64Ptr(&earnings)
	if !storedEarnings.Valid || storedEarnings.Int64 != 0 {
		t.Fatalf("zero earnings is a real amount and must persist, got %+v", storedEarnings)
	}
}
