package penguins

import (
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationErrors, got %T (%v)", err, err)
	}
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		out[fe.Field] = fe.Message
	}
	return out
}

func TestPenguinValidate(t *testing.T) {
	ok := Penguin{Species: "Emperor", FirstName: "Pingu"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("expected valid penguin, got %v", err)
	}

	withDesc := Penguin{Species: "Emperor", FirstName: "Pingu", Description: "likes to slide on the ice", Gender: "male"}
	if err := withDesc.Validate(); err != nil {
		t.Fatalf("expected valid penguin with description, got %v", err)
	}

	fields := fieldsOf(t, Penguin{Species: "  ", Description: "short"}.Validate())
	if fields["species"] != "field is required" {
		t.Fatalf("species: got %q", fields["species"])
	}
	if fields["firstName"] != "field is required" {
		t.Fatalf("firstName: got %q", fields["firstName"])
	}
	if fields["description"] != "must be at least 10 characters" {
		t.Fatalf("description: got %q", fields["description"])
	}
	if len(fields) != 3 {
		t.Fatalf("expected 3 field errors, got %v", fields)
	}
}

func TestDescriptionCountsRunes(t *testing.T) {
	// 10 runas, 20 bytes
	p := Penguin{Species: "Adélie", FirstName: "Ñandú", Description: "ññññññññññ"}
	if err := p.Validate(); err != nil {
		t.Fatalf("expected 10-rune description to pass, got %v", err)
	}
}

func TestPatchValidate(t *testing.T) {
	if err := (Patch{}).Validate(); err != nil {
		t.Fatalf("empty patch must be valid, got %v", err)
	}

	if err := (Patch{FirstName: strPtr("Skipper")}).Validate(); err != nil {
		t.Fatalf("expected valid patch, got %v", err)
	}

	fields := fieldsOf(t, Patch{Species: strPtr(""), Description: strPtr("tiny")}.Validate())
	if _, ok := fields["species"]; !ok {
		t.Fatalf("expected species error, got %v", fields)
	}
	if _, ok := fields["description"]; !ok {
		t.Fatalf("expected description error, got %v", fields)
	}
	if _, ok := fields["firstName"]; ok {
		t.Fatalf("absent field must not be validated, got %v", fields)
	}
}

func TestPatchApply(t *testing.T) {
	cur := Penguin{ID: "x", Species: "Emperor", FirstName: "Pingu", Gender: "male"}

	got := Patch{FirstName: strPtr("Pinga"), Gender: strPtr("female")}.Apply(cur)
	if got.FirstName != "Pinga" || got.Gender != "female" {
		t.Fatalf("patch not applied: %+v", got)
	}
	if got.Species != "Emperor" || got.ID != "x" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
	if cur.FirstName != "Pingu" {
		t.Fatalf("Apply must not mutate its input")
	}

	if !(Patch{}).IsEmpty() {
		t.Fatalf("zero patch should be empty")
	}
	if (Patch{Gender: strPtr("")}).IsEmpty() {
		t.Fatalf("patch with a field should not be empty")
	}
}

func TestParseID(t *testing.T) {
	got, err := ParseID("get", " 6F1C1B8E-0B7A-4A39-9A55-1F0D2B6C9E11 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "6f1c1b8e-0b7a-4a39-9a55-1f0d2b6c9e11" {
		t.Fatalf("expected canonical id, got %q", got)
	}

	for _, bad := range []string{"", "123", "not-a-uuid", "6f1c1b8e-0b7a-4a39-9a55"} {
		_, err := ParseID("get", bad)
		if KindOf(err) != KindInvalidID {
			t.Fatalf("%q: expected KindInvalidID, got %v (%v)", bad, KindOf(err), err)
		}
		if !errors.Is(err, ErrInvalidID) {
			t.Fatalf("%q: expected ErrInvalidID in chain", bad)
		}
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, KindUnknown},
		{"plain", errors.New("boom"), KindUnknown},
		{"validation", ValidationErrors{{Field: "species", Message: "field is required"}}, KindValidation},
		{"not found", NotFound("get", "abc"), KindNotFound},
		{"wrapped not found", errors.Join(errors.New("ctx"), NotFound("delete", "abc")), KindNotFound},
		{"sentinel", ErrNotFound, KindNotFound},
		{"invalid id", InvalidID("update", "abc"), KindInvalidID},
		{"store", StoreError("list", errors.New("conn refused")), KindStore},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}

	if StoreError("list", nil) != nil {
		t.Fatalf("StoreError(nil) must be nil")
	}
}
