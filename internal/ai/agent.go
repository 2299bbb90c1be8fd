package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"glamor-shop/internal/database"
	"glamor-shop/internal/models"
	"glamor-shop/internal/store"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Assistant answers back-office questions about the catalog and the sales
// ledger, and can reprice products on request.
type Assistant struct {
	shop   *store.Shop
	ledger *database.Ledger
}

func NewAssistant(shop *store.Shop, ledger *database.Ledger) *Assistant {
	return &Assistant{shop: shop, ledger: ledger}
}

// Run sends one admin message through the model and resolves any tool
// calls it makes against the live shop state.
func (a *Assistant) Run(ctx context.Context, userMessage, apiKey string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.0-flash-001")

	today := time.Now().Format("2006-01-02")
	systemPrompt := fmt.Sprintf(`SYSTEM: Today is %s. You are the back-office assistant of a boutique clothing shop.

	RULES:
	1. CATALOG: For any question about a product's price, sale price, colors, sizes or stock, call 'check_catalog' and read the JSON to answer. Do not say you cannot see the catalog.
	2. REPRICE: To change a price by product NAME, first call 'check_catalog' to find the ID, then call 'update_product_price' with that ID.
	3. SALES: For revenue, discounts or sales questions, call 'get_sales_report' with a date range.
	4. RESTOCK: For questions about what needs restocking, call 'list_out_of_stock'.

	USER: %s`, today, userMessage)

	model.Tools = []*genai.Tool{
		{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				{
					Name:        "check_catalog",
					Description: "Get the full product catalog. Use this to find ANY product details like ID, name, price, sale price, colors, sizes or stock.",
				},
				{
					Name:        "update_product_price",
					Description: "Update the price of a specific product using its ID",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"product_id": {Type: genai.TypeInteger, Description: "ID of the product"},
							"new_price":  {Type: genai.TypeNumber, Description: "New price"},
						},
						Required: []string{"product_id", "new_price"},
					},
				},
				{
					Name:        "get_sales_report",
					Description: "Get sales, discount and net revenue totals for a date range.",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"start_date": {Type: genai.TypeString, Description: "Start date (YYYY-MM-DD)"},
							"end_date":   {Type: genai.TypeString, Description: "End date (YYYY-MM-DD)"},
						},
						Required: []string{"start_date", "end_date"},
					},
				},
				{
					Name:        "list_out_of_stock",
					Description: "List every product variant that is currently out of stock.",
				},
			},
		},
	}

	session := model.StartChat()

	resp, err := session.SendMessage(ctx, genai.Text(systemPrompt))
	if err != nil {
		return "", err
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if funcCall, ok := part.(genai.FunctionCall); ok {
			switch funcCall.Name {
			case "check_catalog":
				return a.executeCheckCatalog(ctx, session)
			case "update_product_price":
				return a.executeUpdatePrice(ctx, session, funcCall)
			case "get_sales_report":
				return a.executeSalesReport(ctx, session, funcCall)
			case "list_out_of_stock":
				return a.executeListOutOfStock(ctx, session)
			}
		}
	}

	return printResponse(resp), nil
}

// --- TOOL IMPLEMENTATIONS ---

type catalogEntry struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	SalePrice         float64 `json:"sale_price,omitempty"`
	TotallyOutOfStock bool    `json:"totally_out_of_stock"`
}

func (a *Assistant) executeCheckCatalog(ctx context.Context, session *genai.ChatSession) (string, error) {
	var list []catalogEntry
	for _, p := range a.shop.Products() {
		list = append(list, catalogEntry{
			ID:                p.ID,
			Name:              p.Name,
			Category:          string(p.Category),
			Price:             p.Price,
			SalePrice:         p.SalePrice,
			TotallyOutOfStock: p.IsTotallyOutOfStock(),
		})
	}

	jsonBytes, _ := json.Marshal(list)

	finalResp, err := session.SendMessage(ctx, genai.FunctionResponse{
		Name:     "check_catalog",
		Response: map[string]interface{}{"catalog": string(jsonBytes)},
	})
	if err != nil {
		return "", err
	}
	return a.handleFollowUpCall(ctx, session, finalResp)
}

// handleFollowUpCall lets the model chain one more tool call after reading
// the catalog, which is how "reprice by name" works.
func (a *Assistant) handleFollowUpCall(ctx context.Context, session *genai.ChatSession, resp *genai.GenerateContentResponse) (string, error) {
	for _, part := range resp.Candidates[0].Content.Parts {
		if funcCall, ok := part.(genai.FunctionCall); ok {
			if funcCall.Name == "update_product_price" {
				return a.executeUpdatePrice(ctx, session, funcCall)
			}
		}
	}
	return printResponse(resp), nil
}

func (a *Assistant) executeUpdatePrice(ctx context.Context, session *genai.ChatSession, funcCall genai.FunctionCall) (string, error) {
	args := funcCall.Args
	productID := int64(args["product_id"].(float64))
	newPrice := args["new_price"].(float64)

	msg := "Success"
	product, found := a.shop.ProductByID(productID)
	if !found {
		msg = "Product ID not found"
	} else {
		product.Price = newPrice
		a.shop.UpdateProduct(product)
	}

	finalResp, err := session.SendMessage(ctx, genai.FunctionResponse{
		Name:     "update_product_price",
		Response: map[string]interface{}{"status": msg, "new_price": newPrice},
	})
	if err != nil {
		return "", err
	}
	return printResponse(finalResp), nil
}

func (a *Assistant) executeSalesReport(ctx context.Context, session *genai.ChatSession, funcCall genai.FunctionCall) (string, error) {
	args := funcCall.Args
	startStr, _ := args["start_date"].(string)
	endStr, _ := args["end_date"].(string)

	start, err1 := time.Parse("2006-01-02", startStr)
	end, err2 := time.Parse("2006-01-02", endStr)

	response := map[string]interface{}{}
	if err1 != nil || err2 != nil || a.ledger == nil {
		response["error"] = "invalid date range or reporting disabled"
	} else {
		summary, err := a.ledger.GetSummary(start, end.Add(24*time.Hour-time.Nanosecond))
		if err != nil {
			response["error"] = "report query failed"
		} else {
			response["total_sales"] = summary.TotalSales
			response["total_discounts"] = summary.TotalDiscounts
			response["net_revenue"] = summary.NetRevenue
			response["entry_count"] = summary.EntryCount
		}
	}

	finalResp, err := session.SendMessage(ctx, genai.FunctionResponse{
		Name:     "get_sales_report",
		Response: response,
	})
	if err != nil {
		return "", err
	}
	return printResponse(finalResp), nil
}

type stockGap struct {
	Product string      `json:"product"`
	Color   string      `json:"color"`
	Size    models.Size `json:"size"`
}

func (a *Assistant) executeListOutOfStock(ctx context.Context, session *genai.ChatSession) (string, error) {
	var gaps []stockGap
	for _, p := range a.shop.Products() {
		for _, v := range p.Variants {
			if v.IsOutOfStock {
				gaps = append(gaps, stockGap{Product: p.Name, Color: v.Color, Size: v.Size})
			}
		}
	}

	jsonBytes, _ := json.Marshal(gaps)

	finalResp, err := session.SendMessage(ctx, genai.FunctionResponse{
		Name:     "list_out_of_stock",
		Response: map[string]interface{}{"out_of_stock": string(jsonBytes)},
	})
	if err != nil {
		return "", err
	}
	return printResponse(finalResp), nil
}

func printResponse(resp *genai.GenerateContentResponse) string {
	var out string
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					out += string(text)
				}
			}
		}
	}
	if out == "" {
		out = "I could not produce an answer for that."
	}
	return out
}
