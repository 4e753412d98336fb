package service

import (
	"fmt"
	"strings"
)

const recipeSchema = `{
    "title": "recipe name",
    "instructions": "numbered steps, one per line"
}`

// BuildRecipePrompt asks the model for a recipe made from ingredients as a
// JSON object with exactly the title and instructions fields. strict adds an
// explicit ban on text outside the object.
func BuildRecipePrompt(ingredients string, strict bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a cooking recipe based on these ingredients: %s.\n", ingredients)
	b.WriteString("Respond strictly with a JSON object using this schema:\n")
	b.WriteString(recipeSchema)
	b.WriteString("\n")
	if strict {
		b.WriteString("Return only the JSON object, with no extra text outside the JSON.\n")
	}
	return b.String()
}
