package engine_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/jonesrussell/siteleads/internal/engine"
)

const contactHTML = `<html><body>
  <p>Call us at (312) 555-0142 or 312.555.0199.</p>
  <a href="mailto:info@joespizza.com">info@joespizza.com</a>
  <p>Bookings: events@joespizza.com — again (312) 555-0142</p>
</body></html>`

func TestExtractContacts_Basic(t *testing.T) {
	t.Parallel()

	emails, phones := engine.ExtractContacts(contactHTML)

	wantEmails := []string{"info@joespizza.com", "events@joespizza.com"}
	if !reflect.DeepEqual(emails, wantEmails) {
		t.Errorf("emails: expected %v, got %v", wantEmails, emails)
	}

	wantPhones := []string{"(312) 555-0142", "312.555.0199"}
	if !reflect.DeepEqual(phones, wantPhones) {
		t.Errorf("phones: expected %v, got %v", wantPhones, phones)
	}
}

func TestExtractContacts_DedupePreservesScanOrder(t *testing.T) {
	t.Parallel()

	text := "b@example.com a@example.com b@example.com a@example.com"

	emails, _ := engine.ExtractContacts(text)

	want := []string{"b@example.com", "a@example.com"}
	if !reflect.DeepEqual(emails, want) {
		t.Errorf("expected first-seen order %v, got %v", want, emails)
	}
}

func TestExtractContacts_CappedAtFive(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	for i := range 20 {
		sb.WriteString(string(rune('a'+i)) + "@example.com ")
	}

	emails, _ := engine.ExtractContacts(sb.String())

	if len(emails) != 5 {
		t.Fatalf("expected cap of 5 emails, got %d", len(emails))
	}
	if emails[0] != "a@example.com" || emails[4] != "e@example.com" {
		t.Errorf("expected first five in scan order, got %v", emails)
	}
}

func TestExtractContacts_Idempotent(t *testing.T) {
	t.Parallel()

	first, firstPhones := engine.ExtractContacts(contactHTML)
	second, secondPhones := engine.ExtractContacts(contactHTML)

	if !reflect.DeepEqual(first, second) || !reflect.DeepEqual(firstPhones, secondPhones) {
		t.Error("extraction must be idempotent over identical content")
	}
}

func TestExtractContacts_EmptyAndMalformedInput(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "not-an-email@", "@nope.com", "555-12"} {
		emails, phones := engine.ExtractContacts(text)

		if len(emails) != 0 {
			t.Errorf("input %q: expected no emails, got %v", text, emails)
		}
		if len(phones) != 0 {
			t.Errorf("input %q: expected no phones, got %v", text, phones)
		}
	}
}
