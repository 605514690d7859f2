package geocode

import "testing"

func TestParseNominatimItems(t *testing.T) {
	items := []nominatimItem{
		{Lat: "6.4550", Lon: "3.3841"},
	}
	res, err := parseNominatimItems(items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Lat != 6.4550 || res.Lon != 3.3841 {
		t.Fatalf("unexpected coordinates: %+v", res)
	}
}

func TestParseNominatimItemsEmpty(t *testing.T) {
	if _, err := parseNominatimItems(nil); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestParseNominatimItemsBadLat(t *testing.T) {
	items := []nominatimItem{{Lat: "north", Lon: "3.38"}}
	if _, err := parseNominatimItems(items); err == nil {
		t.Fatalf("expected parse error")
	}
}
