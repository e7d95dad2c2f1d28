package schema

import "testing"

func TestValidateOCRInput_Accepts(t *testing.T) {
	doc := []byte(`{
		"identifier": "book0001",
		"pages": [
			{"width": 1000, "height": 2000, "words": [
				{"text": "1", "bbox": [900, 1900, 950, 1940], "fontsize": 10, "confidence": 95}
			]}
		]
	}`)
	if err := ValidateOCRInput(doc); err != nil {
		t.Fatalf("ValidateOCRInput: %v", err)
	}
}

func TestValidateOCRInput_RejectsMissingPages(t *testing.T) {
	doc := []byte(`{"identifier": "book0001"}`)
	if err := ValidateOCRInput(doc); err == nil {
		t.Fatal("expected an error for a document missing \"pages\"")
	}
}

func TestValidateOCRInput_RejectsMalformedJSON(t *testing.T) {
	if err := ValidateOCRInput([]byte("not json")); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestValidateOCRInput_RejectsBadBBoxShape(t *testing.T) {
	doc := []byte(`{"pages": [{"width": 100, "height": 100, "words": [
		{"text": "1", "bbox": [1, 2, 3]}
	]}]}`)
	if err := ValidateOCRInput(doc); err == nil {
		t.Fatal("expected an error for a 3-element bbox")
	}
}
