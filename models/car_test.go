package models

import "testing"

func TestCarValidate(t *testing.T) {
	valid := Car{Title: "Falcon GT", Brand: "Flames", Price: 125000}

	t.Run("valid car", func(t *testing.T) {
		if err := valid.Validate(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("zero price is valid", func(t *testing.T) {
		car := valid
		car.Price = 0
		if err := car.Validate(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("empty title", func(t *testing.T) {
		car := valid
		car.Title = ""
		err := car.Validate()
		if err == nil || err.Field != "title" {
			t.Fatalf("expected a title error, got %v", err)
		}
	})

	t.Run("empty brand", func(t *testing.T) {
		car := valid
		car.Brand = ""
		err := car.Validate()
		if err == nil || err.Field != "brand" {
			t.Fatalf("expected a brand error, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		car := valid
		car.Price = -0.01
		err := car.Validate()
		if err == nil || err.Field != "price" {
			t.Fatalf("expected a price error, got %v", err)
		}
	})
}
