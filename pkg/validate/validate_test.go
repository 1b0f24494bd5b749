package validate_test

import (
	"testing"

	"github.com/vitrinehq/vitrine/pkg/validate"
)

type productInput struct {
	Name        string `json:"name"        validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Price       string `json:"price"       validate:"required,numeric"`
	Note        string `json:"note"        validate:"nullable,min=3"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(productInput{
		Name:        "Widget",
		Description: "A test widget",
		Price:       "9.99",
		Note:        "", // nullable — allowed to be empty
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(productInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	for _, field := range []string{"name", "description", "price"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
}

func TestNumericRule(t *testing.T) {
	errs := validate.Struct(productInput{
		Name: "x", Description: "y", Price: "nine dollars",
	})
	if _, ok := errs["price"]; !ok {
		t.Error("expected price numeric validation error")
	}

	errs = validate.Struct(productInput{
		Name: "x", Description: "y", Price: "12.50",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected numeric string to pass, got: %v", errs)
	}
}

func TestNullableSkipsRemainingRules(t *testing.T) {
	errs := validate.Struct(productInput{
		Name: "x", Description: "y", Price: "1", Note: "ab",
	})
	if _, ok := errs["note"]; !ok {
		t.Error("expected min=3 to fail on a present note")
	}

	errs = validate.Struct(productInput{
		Name: "x", Description: "y", Price: "1",
	})
	if _, ok := errs["note"]; ok {
		t.Error("expected empty nullable note to pass")
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Kind string `json:"kind" validate:"required,in=success,error"`
	}
	if errs := validate.Struct(in{Kind: "warning"}); !validate.HasErrors(errs) {
		t.Error("expected out-of-set value to fail")
	}
	if errs := validate.Struct(in{Kind: "success"}); validate.HasErrors(errs) {
		t.Errorf("expected listed value to pass, got: %v", errs)
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	if errs := validate.Struct(in{Email: "not-an-email"}); !validate.HasErrors(errs) {
		t.Error("expected email validation error")
	}
	if errs := validate.Struct(in{Email: "valid@example.com"}); validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}
