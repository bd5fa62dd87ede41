package itinerary

import (
	"fmt"

	"google.golang.org/genai"
)

const systemPrompt = `You are a local travel expert who creates unique, hyper-local micro-adventures and itineraries.
Create 3 different themed walking itineraries for the given location that focus on hidden gems, local culture, and unique experiences.
Each itinerary should be 2-4 hours long and include 4-6 stops with walking times between them.

Respond with JSON in this exact format:
{
  "itineraries": [
    {
      "title": "String - Creative, engaging title",
      "description": "String - Brief description of the adventure theme",
      "duration_minutes": number,
      "stops": [
        {
          "name": "String - Name of the place/stop",
          "category": "String - Type (Restaurant, Park, Museum, Shop, etc.)",
          "description": "String - Detailed description of what makes this place special",
          "image_url": "String - High-quality Unsplash URL related to the place",
          "walking_time_minutes": number
        }
      ]
    }
  ],
  "sources": [
    {
      "title": "String - Source title",
      "url": "String - Placeholder URL",
      "snippet": "String - Brief description of the source"
    }
  ]
}`

func getItinerariesPrompt(location string) string {
	return fmt.Sprintf(`Create 3 unique micro-adventure itineraries for: %s

Focus on:
- Hidden gems and local favorites
- Unique cultural experiences
- Walkable routes with interesting stops
- Real places that exist in this location
- Diverse themes (food, culture, nature, architecture, etc.)

For image_url, use Unsplash URLs in this format: https://images.unsplash.com/photo-[photo-id]?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600
Choose photos that best represent each stop.

Include 2-3 credible sources that would help plan these adventures.`, location)
}

// itineraryResponseSchema constrains the provider to the exact response shape
// so the returned payload is always parseable JSON.
func itineraryResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"itineraries": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":            {Type: genai.TypeString},
						"description":      {Type: genai.TypeString},
						"duration_minutes": {Type: genai.TypeNumber},
						"stops": {
							Type: genai.TypeArray,
							Items: &genai.Schema{
								Type: genai.TypeObject,
								Properties: map[string]*genai.Schema{
									"name":                 {Type: genai.TypeString},
									"category":             {Type: genai.TypeString},
									"description":          {Type: genai.TypeString},
									"image_url":            {Type: genai.TypeString},
									"walking_time_minutes": {Type: genai.TypeNumber},
								},
								Required: []string{"name", "category", "description", "walking_time_minutes"},
							},
						},
					},
					Required: []string{"title", "description", "duration_minutes", "stops"},
				},
			},
			"sources": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":   {Type: genai.TypeString},
						"url":     {Type: genai.TypeString},
						"snippet": {Type: genai.TypeString},
					},
					Required: []string{"title", "url", "snippet"},
				},
			},
		},
		Required: []string{"itineraries", "sources"},
	}
}
