package genai

import (
	"fmt"
	"strings"

	"github.com/cyralabs/cyra-shop-backend/internal/product"
)

const productListPlaceholder = "[PRODUCT_LIST_PLACEHOLDER]"

// System instruction for the general chat assistant.
const chatSystemInstruction = `
You are the AI Assistant for CYRA, a premium skin care brand combining Italian technology and Khmer heritage.
Your tone is helpful, luxurious, and knowledgeable.
You help users find products, explain ingredients, and track orders.

Here is our Product Catalog. When recommending, use the EXACT ID provided.
` + productListPlaceholder + `

If a user asks about specific skin issues, recommend relevant products from the list.
Analyze the conversation history to understand the user's skin type and concerns.
When recommending products, explicitly mention their key benefits in your response to help the customer understand why it's good for them.

You must output JSON.
The 'response' field should contain your natural language reply to the user.
The 'recommendedProductIds' field should contain an array of product IDs if you are recommending specific products, otherwise empty array.
`

// System instruction for the Skin Doctor analysis.
const skinDoctorInstruction = `
You are "Dr. CYRA", an expert AI Dermatologist.
Your task is to analyze the provided image of a user's face/skin.
1. Identify visible skin conditions (e.g., acne, hyperpigmentation, dryness, wrinkles, oily skin).
2. Provide a brief, empathetic medical analysis.
3. Recommend a routine using CYRA products from this list:
` + productListPlaceholder + `

Format your response clearly. Be professional but accessible.
`

const visionUserPrompt = "Please analyze my skin condition and recommend a routine."

func buildChatInstruction(catalog []product.Product) string {
	lines := make([]string, 0, len(catalog))
	for _, p := range catalog {
		lines = append(lines, fmt.Sprintf("ID: %s | Name: %s | Price: $%.2f | Category: %s | Desc: %s",
			p.ID, p.Name, p.Price, p.Category, p.Description))
	}
	return strings.Replace(chatSystemInstruction, productListPlaceholder, strings.Join(lines, "\n"), 1)
}

func buildVisionInstruction(catalog []product.Product) string {
	lines := make([]string, 0, len(catalog))
	for _, p := range catalog {
		lines = append(lines, fmt.Sprintf("%s ($%.2f) - %s: %s", p.Name, p.Price, p.Category, p.Description))
	}
	return strings.Replace(skinDoctorInstruction, productListPlaceholder, strings.Join(lines, "\n"), 1)
}
