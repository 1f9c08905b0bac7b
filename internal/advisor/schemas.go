package advisor

import "github.com/google/generative-ai-go/genai"

// Response schemas constrain Gemini to the exact JSON shapes the features
// parse. Parsing still validates everything; the schema only raises the odds
// of a usable response.

func suggestionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":                 {Type: genai.TypeString},
			"positive_feedback":     {Type: genai.TypeString},
			"areas_for_improvement": {Type: genai.TypeString},
			"actionable_tips": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"tip":         {Type: genai.TypeString},
						"explanation": {Type: genai.TypeString},
					},
					Required: []string{"tip", "explanation"},
				},
			},
		},
		Required: []string{"title", "positive_feedback", "areas_for_improvement", "actionable_tips"},
	}
}

func receiptSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"vendor":      {Type: genai.TypeString, Description: "The name of the vendor or store."},
			"totalAmount": {Type: genai.TypeNumber, Description: "The final total amount of the transaction."},
			"transactionDate": {
				Type:        genai.TypeString,
				Description: "The date of the transaction in YYYY-MM-DD format.",
			},
			"suggestedCategoryName": {
				Type:        genai.TypeString,
				Description: "The suggested overall category name from the provided list.",
			},
			"location": {
				Type:        genai.TypeString,
				Description: "The street address of the vendor. Return an empty string if not found.",
			},
			"items": {
				Type:        genai.TypeArray,
				Description: "An itemized list of products and their prices. Can be empty.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"description": {Type: genai.TypeString},
						"amount":      {Type: genai.TypeNumber},
					},
					Required: []string{"description", "amount"},
				},
			},
		},
		Required: []string{"vendor", "totalAmount", "transactionDate", "suggestedCategoryName", "location", "items"},
	}
}

func planSchema() *genai.Schema {
	bucket := func() *genai.Schema {
		return &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":    {Type: genai.TypeString},
					"planned": {Type: genai.TypeNumber},
				},
				Required: []string{"name", "planned"},
			},
		}
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"income":   bucket(),
			"bills":    bucket(),
			"expenses": bucket(),
			"savings":  bucket(),
			"debt":     bucket(),
		},
		Required: []string{"income", "bills", "expenses", "savings", "debt"},
	}
}
