package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  Locale
		ok    bool
	}{
		{name: "english", value: "en", want: LocaleEN, ok: true},
		{name: "arabic", value: "ar", want: LocaleAR, ok: true},
		{name: "arabic regional", value: "ar-EG", want: LocaleAR, ok: true},
		{name: "english regional", value: "en-GB", want: LocaleEN, ok: true},
		{name: "padded", value: "  ar ", want: LocaleAR, ok: true},
		{name: "unsupported", value: "fr", ok: false},
		{name: "garbage", value: "!!", ok: false},
		{name: "empty", value: "", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Parse(tc.value)
			if ok != tc.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tc.value, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("Parse(%q) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestNegotiate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		accept string
		want   Locale
	}{
		{name: "arabic preferred", accept: "ar,en;q=0.8", want: LocaleAR},
		{name: "english preferred", accept: "en-US,en;q=0.9,ar;q=0.5", want: LocaleEN},
		{name: "regional arabic", accept: "ar-EG", want: LocaleAR},
		{name: "unsupported falls back", accept: "fr-FR,fr;q=0.9", want: DefaultLocale},
		{name: "empty header", accept: "", want: DefaultLocale},
		{name: "malformed header", accept: ";;;", want: DefaultLocale},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Negotiate(tc.accept); got != tc.want {
				t.Fatalf("Negotiate(%q) = %q, want %q", tc.accept, got, tc.want)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	t.Parallel()

	if got := Direction(LocaleEN); got != "ltr" {
		t.Fatalf("Direction(en) = %q, want ltr", got)
	}
	if got := Direction(LocaleAR); got != "rtl" {
		t.Fatalf("Direction(ar) = %q, want rtl", got)
	}
}

func TestTagRoundTrip(t *testing.T) {
	t.Parallel()

	for _, locale := range Supported() {
		tag := Tag(locale)
		if tag == (language.Tag{}) {
			t.Fatalf("Tag(%q) returned zero tag", locale)
		}
		parsed, ok := Parse(tag.String())
		if !ok || parsed != locale {
			t.Fatalf("Parse(Tag(%q)) = %q, %v", locale, parsed, ok)
		}
	}
}

func TestDictionaryForLocalizes(t *testing.T) {
	t.Parallel()

	english := DictionaryFor(LocaleEN)
	arabic := DictionaryFor(LocaleAR)

	if english.Validation.NameRequired != "Name is required" {
		t.Fatalf("en name required = %q", english.Validation.NameRequired)
	}
	if english.Notifications.Success != "Profile updated successfully!" {
		t.Fatalf("en success = %q", english.Notifications.Success)
	}
	if arabic.Validation.NameRequired == english.Validation.NameRequired {
		t.Fatal("expected translated arabic name required message")
	}
	if arabic.Page.Title == "" || arabic.Form.Submit == "" {
		t.Fatal("expected populated arabic dictionary")
	}
}
