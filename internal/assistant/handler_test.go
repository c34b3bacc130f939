package assistant

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/cyralabs/cyra-shop-backend/internal/camera"
	"github.com/cyralabs/cyra-shop-backend/internal/genai"
)

func makeAppWithAssistant(gen Generator, cam *camera.Session) (*fiber.App, *Controller) {
	c := NewController(gen, testCatalog(), cam, nil)
	app := fiber.New()
	NewHandler(c).RegisterPublicRoutes(app)
	return app, c
}

func TestAssistantRoutes(t *testing.T) {
	gen := &stubGenerator{chatReply: genai.ChatReply{Text: "Try our Night Cream", RecommendedProductIDs: []string{"p7"}}}
	app, _ := makeAppWithAssistant(gen, nil)

	// seeded greeting is visible
	req := httptest.NewRequest("GET", "/api/v1/assistant/messages", nil)
	res, _ := app.Test(req)
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "Suasdey") {
		t.Fatalf("expected greeting in log, got %s", string(b))
	}
	if !strings.Contains(string(b), `"mode":"chat"`) {
		t.Fatalf("expected chat mode, got %s", string(b))
	}

	// send a message and get the structured reply back
	req2 := httptest.NewRequest("POST", "/api/v1/assistant/message", strings.NewReader(`{"text":"What helps with dryness?"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), "Try our Night Cream") || !strings.Contains(string(b2), `"recommendedProductIds":["p7"]`) {
		t.Fatalf("unexpected reply body %s", string(b2))
	}

	// empty message is rejected
	req3 := httptest.NewRequest("POST", "/api/v1/assistant/message", strings.NewReader(`{"text":"  "}`))
	req3.Header.Set("Content-Type", "application/json")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for empty text, got %d", res3.StatusCode)
	}
}

func TestAssistantModeAndAttachment(t *testing.T) {
	app, c := makeAppWithAssistant(&stubGenerator{visionText: "analysis"}, nil)

	// attachment in chat mode rejected
	req := httptest.NewRequest("POST", "/api/v1/assistant/attachment", strings.NewReader(`{"image":"data:image/jpeg;base64,aGk="}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 outside skin-analysis, got %d", res.StatusCode)
	}

	// switch to skin-analysis, attach, clear
	req2 := httptest.NewRequest("POST", "/api/v1/assistant/mode", strings.NewReader(`{"mode":"skin-analysis"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for mode switch, got %d", res2.StatusCode)
	}

	req3 := httptest.NewRequest("POST", "/api/v1/assistant/attachment", strings.NewReader(`{"image":"data:image/jpeg;base64,aGk="}`))
	req3.Header.Set("Content-Type", "application/json")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for attach, got %d", res3.StatusCode)
	}
	if c.PendingAttachment() == "" {
		t.Fatalf("attachment not staged")
	}

	req4 := httptest.NewRequest("DELETE", "/api/v1/assistant/attachment", nil)
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for clear, got %d", res4.StatusCode)
	}
	if c.PendingAttachment() != "" {
		t.Fatalf("attachment not cleared")
	}

	// unknown mode rejected
	req5 := httptest.NewRequest("POST", "/api/v1/assistant/mode", strings.NewReader(`{"mode":"voice"}`))
	req5.Header.Set("Content-Type", "application/json")
	res5, _ := app.Test(req5)
	if res5.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for unknown mode, got %d", res5.StatusCode)
	}
}

func TestCameraRoutes(t *testing.T) {
	dev := &fakeDevice{stream: &fakeStream{frame: []byte("frame")}}
	app, c := makeAppWithAssistant(&stubGenerator{}, camera.NewSession(dev))
	c.SwitchMode(ModeSkinAnalysis)

	req := httptest.NewRequest("POST", "/api/v1/assistant/camera/open", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for open, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("POST", "/api/v1/assistant/camera/capture", nil)
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for capture, got %d", res2.StatusCode)
	}
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), "data:image/jpeg;base64,") {
		t.Fatalf("expected data URI in capture response, got %s", string(b2))
	}

	req3 := httptest.NewRequest("POST", "/api/v1/assistant/camera/close", nil)
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for close, got %d", res3.StatusCode)
	}
}

func TestCameraOpenDeviceError(t *testing.T) {
	dev := &fakeDevice{openErr: errors.New("permission denied")}
	app, _ := makeAppWithAssistant(&stubGenerator{}, camera.NewSession(dev))

	req := httptest.NewRequest("POST", "/api/v1/assistant/camera/open", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusServiceUnavailable {
		t.Fatalf("expected 503 for device error, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "Unable to access camera") {
		t.Fatalf("expected user-visible notice, got %s", string(b))
	}
}
