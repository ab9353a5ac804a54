package parser

import (
	"testing"

	"github.com/recipemd/recipemd/models"
)

func TestValidateRecipe(t *testing.T) {
	tests := []struct {
		name    string
		recipe  *models.Recipe
		wantErr bool
	}{
		{
			name: "valid recipe",
			recipe: &models.Recipe{
				Title:       "Shakshuka",
				Ingredients: []string{"6 eggs"},
			},
			wantErr: false,
		},
		{
			name: "instructions only",
			recipe: &models.Recipe{
				Title:        "Boiled Egg",
				Instructions: []string{"Boil the egg."},
			},
			wantErr: false,
		},
		{
			name:    "nil recipe",
			recipe:  nil,
			wantErr: true,
		},
		{
			name: "missing title",
			recipe: &models.Recipe{
				Ingredients: []string{"6 eggs"},
			},
			wantErr: true,
		},
		{
			name: "no content",
			recipe: &models.Recipe{
				Title: "Shakshuka",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecipe(tt.recipe)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRecipe() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFileSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple", input: "Chocolate Cake", expected: "chocolate-cake"},
		{name: "extra whitespace", input: "  Pad   Thai \n", expected: "pad-thai"},
		{name: "already lower", input: "gazpacho", expected: "gazpacho"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileSlug(tt.input); got != tt.expected {
				t.Errorf("FileSlug(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestImageExtension(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "jpg", input: "https://img.example.com/cake.jpg", expected: "jpg"},
		{name: "png with query", input: "https://img.example.com/cake.PNG?w=640", expected: "png"},
		{name: "no extension", input: "https://img.example.com/cake", expected: "jpg"},
		{name: "empty", input: "", expected: "jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ImageExtension(tt.input); got != tt.expected {
				t.Errorf("ImageExtension(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNutrientLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "calories", input: "calories", expected: "Calories"},
		{name: "fat content", input: "fatContent", expected: "Fat"},
		{name: "saturated fat", input: "saturatedFatContent", expected: "Saturated fat"},
		{name: "serving size", input: "servingSize", expected: "Serving size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NutrientLabel(tt.input); got != tt.expected {
				t.Errorf("NutrientLabel(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	got := NormalizeWhitespace("  Mix \t the\n eggs  ")
	if got != "Mix the eggs" {
		t.Errorf("NormalizeWhitespace() = %q, want %q", got, "Mix the eggs")
	}
}
