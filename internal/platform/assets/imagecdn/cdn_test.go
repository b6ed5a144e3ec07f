package imagecdn

import (
	"errors"
	"testing"
)

func TestFlatCDNURLIgnoresTransforms(t *testing.T) {
	t.Parallel()

	cdn := New("https://cdn.example.com/assets/")
	got, err := cdn.URL(Request{
		AssetID:   "gallery/001",
		Extension: ".jpg",
		Delivery:  &Delivery{WidthPX: 200, Blur: 1000},
	})
	if err != nil {
		t.Fatalf("resolve url: %v", err)
	}
	want := "https://cdn.example.com/assets/gallery/001.jpg"
	if got != want {
		t.Fatalf("cdn.URL(...) = %q, want %q", got, want)
	}
	if cdn.Transforms() {
		t.Fatal("flat cdn reports transforms")
	}
}

func TestCloudinaryCDNURLIncludesScaleAndBlur(t *testing.T) {
	t.Parallel()

	cdn := New(BaseURL("https://res.cloudinary.com", "hro"))
	got, err := cdn.URL(Request{
		AssetID:   "gallery/match-day",
		Extension: "jpg",
		Delivery:  &Delivery{WidthPX: 1600, Blur: 1000},
	})
	if err != nil {
		t.Fatalf("resolve url: %v", err)
	}
	want := "https://res.cloudinary.com/hro/image/upload/c_scale,w_1600,e_blur:1000/gallery/match-day.jpg"
	if got != want {
		t.Fatalf("cdn.URL(...) = %q, want %q", got, want)
	}
	if cdn.Mode() != ModeTransform {
		t.Fatalf("Mode() = %q, want %q", cdn.Mode(), ModeTransform)
	}
}

func TestCloudinaryCDNURLWithoutDeliveryOmitsTransformSegment(t *testing.T) {
	t.Parallel()

	cdn := New("https://res.cloudinary.com/hro/image/upload")
	got, err := cdn.URL(Request{AssetID: "a", Extension: "png"})
	if err != nil {
		t.Fatalf("resolve url: %v", err)
	}
	if want := "https://res.cloudinary.com/hro/image/upload/a.png"; got != want {
		t.Fatalf("cdn.URL(...) = %q, want %q", got, want)
	}
}

func TestCDNURLIsDeterministic(t *testing.T) {
	t.Parallel()

	cdn := New(BaseURL("https://res.cloudinary.com", "hro"))
	req := Request{AssetID: "x/y", Extension: "webp", Delivery: &Delivery{WidthPX: 8, Blur: 1000, Quality: 70, Format: "jpg"}}
	first, err := cdn.URL(req)
	if err != nil {
		t.Fatalf("resolve url: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := cdn.URL(req)
		if err != nil {
			t.Fatalf("resolve url: %v", err)
		}
		if again != first {
			t.Fatalf("cdn.URL(...) = %q, want %q", again, first)
		}
	}
	if want := "https://res.cloudinary.com/hro/image/upload/c_scale,w_8,e_blur:1000,q_70,f_jpg/x/y.webp"; first != want {
		t.Fatalf("cdn.URL(...) = %q, want %q", first, want)
	}
}

func TestCDNURLEscapesAssetSegments(t *testing.T) {
	t.Parallel()

	cdn := New("https://cdn.example.com")
	got, err := cdn.URL(Request{AssetID: "team photos/day 1", Extension: "jpg"})
	if err != nil {
		t.Fatalf("resolve url: %v", err)
	}
	if want := "https://cdn.example.com/team%20photos/day%201.jpg"; got != want {
		t.Fatalf("cdn.URL(...) = %q, want %q", got, want)
	}
}

func TestCDNURLRejectsMissingFields(t *testing.T) {
	t.Parallel()

	cdn := New("https://cdn.example.com/assets")
	if _, err := cdn.URL(Request{}); !errors.Is(err, ErrAssetIDRequired) {
		t.Fatalf("cdn.URL(...) error = %v, want %v", err, ErrAssetIDRequired)
	}
	if _, err := cdn.URL(Request{AssetID: "a"}); !errors.Is(err, ErrExtensionRequired) {
		t.Fatalf("cdn.URL(...) error = %v, want %v", err, ErrExtensionRequired)
	}
}

func TestBaseURL(t *testing.T) {
	t.Parallel()

	if got := BaseURL("https://res.cloudinary.com/", "hro"); got != "https://res.cloudinary.com/hro/image/upload" {
		t.Fatalf("BaseURL() = %q", got)
	}
	if got := BaseURL("https://mirror.example.com", ""); got != "https://mirror.example.com" {
		t.Fatalf("BaseURL() = %q", got)
	}
}

func TestTransformSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   *Delivery
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "empty", in: &Delivery{}, want: ""},
		{name: "scale", in: &Delivery{WidthPX: 200}, want: "c_scale,w_200"},
		{name: "placeholder", in: &Delivery{WidthPX: 8, Blur: 1000, Quality: 70, Format: ".jpg"}, want: "c_scale,w_8,e_blur:1000,q_70,f_jpg"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := TransformSpec(tc.in); got != tc.want {
				t.Fatalf("TransformSpec() = %q, want %q", got, tc.want)
			}
		})
	}
}
