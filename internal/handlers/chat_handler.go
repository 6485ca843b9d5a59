package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Request/response shapes for the Gemini generateContent API.

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
			Role  string       `json:"role"`
		} `json:"content"`
	} `json:"candidates"`
}

const chatSystemPrompt = `You are a helpful and friendly assistant for the Jayade Dental Clinic website. You must follow these rules:
1. Your knowledge base is strictly limited to the clinic's services: check-ups, teeth cleaning, X-rays, fillings, root canal treatment, whitening and braces consultations.
2. Answer questions politely based ONLY on this information.
3. If asked for medical advice or anything outside the service list, respond with: "I can only provide information about our services. For any other questions, please contact the clinic directly or submit an enquiry through the website."
4. Do not make up services, prices or availability.
5. If asked how to book, explain that the appointment request form on the website is the fastest way and that the clinic will call back to confirm a slot.`

// HandleChat answers visitor questions about the clinic through the
// Gemini HTTP API. Public, like the enquiry form it complements.
func (h *Handler) HandleChat(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message cannot be empty"})
		return
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	url := "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent?key=" + apiKey

	requestBody := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: chatSystemPrompt}}},
			{Role: "model", Parts: []geminiPart{{Text: "Understood. I will only answer questions about the clinic's services."}}},
			{Role: "user", Parts: []geminiPart{{Text: req.Message}}},
		},
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	httpReq, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		log.Printf("HandleChat: request to AI service failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reach AI service"})
		return
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read AI response"})
		return
	}

	if httpResp.StatusCode != http.StatusOK {
		log.Printf("HandleChat: AI service returned %d: %s", httpResp.StatusCode, string(respBody))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI service returned an error"})
		return
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(respBody, &geminiResp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse AI response"})
		return
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": geminiResp.Candidates[0].Content.Parts[0].Text,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "AI returned an empty or invalid response"})
}
