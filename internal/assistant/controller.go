package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/asaskevich/EventBus"

	"github.com/cyralabs/cyra-shop-backend/internal/camera"
	"github.com/cyralabs/cyra-shop-backend/internal/genai"
	"github.com/cyralabs/cyra-shop-backend/internal/product"
	"github.com/cyralabs/cyra-shop-backend/internal/recommended"
)

// Generator is the generation client the controller dispatches to.
// *genai.Client satisfies it; tests use stubs.
type Generator interface {
	SendChat(ctx context.Context, history []genai.HistoryEntry, newMessage string, catalog []product.Product) (genai.ChatReply, error)
	SendVisionAnalysis(ctx context.Context, imageBase64 string, catalog []product.Product) (string, error)
}

// Catalog provides the read-only product snapshot interpolated into requests.
// *product.Service satisfies it.
type Catalog interface {
	List() []product.Product
}

// Controller is the conversation state machine. At most one generation request
// is in flight at a time; concurrent submissions fail with ErrBusy.
type Controller struct {
	mu           sync.Mutex
	mode         Mode
	messages     []Message
	pendingImage string
	inFlight     bool
	closed       bool

	gen     Generator
	catalog Catalog
	camera  *camera.Session
	bus     EventBus.Bus
}

// NewController seeds the log with the greeting message. cam may be nil when
// no capture device is wired; bus may be nil, in which case a private bus is
// created.
func NewController(gen Generator, catalog Catalog, cam *camera.Session, bus EventBus.Bus) *Controller {
	if bus == nil {
		bus = EventBus.New()
	}
	c := &Controller{
		mode:    ModeChat,
		gen:     gen,
		catalog: catalog,
		camera:  cam,
		bus:     bus,
	}
	c.appendLocked(Message{Role: RoleModel, Text: greeting})
	return c
}

// Bus exposes the event bus carrying TopicMessageAppended events.
func (c *Controller) Bus() EventBus.Bus { return c.bus }

// appendLocked appends to the log and publishes the new entry. Callers must
// hold c.mu (or be the constructor).
func (c *Controller) appendLocked(m Message) {
	c.messages = append(c.messages, m)
	c.bus.Publish(TopicMessageAppended, m)
}

func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

func (c *Controller) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// Messages returns a snapshot of the append-only log.
func (c *Controller) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// SwitchMode changes the active mode without clearing the log. Leaving
// skin-analysis discards any pending unsent image.
func (c *Controller) SwitchMode(mode Mode) error {
	if mode != ModeChat && mode != ModeSkinAnalysis {
		return ErrUnknownMode
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode == ModeSkinAnalysis && mode != ModeSkinAnalysis {
		c.pendingImage = ""
	}
	c.mode = mode
	return nil
}

// AttachImage stages a still image (base64 JPEG data URI) for the next
// submission, replacing any previous pending image. Skin-analysis mode only.
func (c *Controller) AttachImage(image string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != ModeSkinAnalysis {
		return ErrNotSkinMode
	}
	c.pendingImage = image
	return nil
}

// ClearAttachment drops the pending image without sending it.
func (c *Controller) ClearAttachment() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingImage = ""
}

// PendingAttachment returns the staged image, if any.
func (c *Controller) PendingAttachment() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingImage
}

// Submit appends the user message, dispatches to the generation client per the
// current mode, and appends the model reply (with recommendations resolved in
// chat mode). While the request is in flight further submissions fail with
// ErrBusy and nothing is appended for them.
func (c *Controller) Submit(ctx context.Context, text string) (Message, error) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return Message{}, ErrBusy
	}

	mode := c.mode
	image := ""
	if mode == ModeSkinAnalysis {
		image = c.pendingImage
	}
	if strings.TrimSpace(text) == "" && image == "" {
		c.mu.Unlock()
		return Message{}, ErrEmptyMessage
	}

	// history excludes the message being submitted; it travels separately
	history := make([]genai.HistoryEntry, 0, len(c.messages))
	for _, m := range c.messages {
		history = append(history, genai.HistoryEntry{Role: m.Role, Text: m.Text})
	}

	userMsg := Message{Role: RoleUser, Text: text, Image: image}
	c.appendLocked(userMsg)
	c.inFlight = true
	c.mu.Unlock()

	catalog := c.catalog.List()
	reply := c.dispatch(ctx, mode, text, image, history, catalog)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false
	c.pendingImage = ""
	if c.closed {
		// the surface went away; the completed reply is discarded
		return reply, nil
	}
	c.appendLocked(reply)
	return reply, nil
}

func (c *Controller) dispatch(ctx context.Context, mode Mode, text, image string, history []genai.HistoryEntry, catalog []product.Product) Message {
	if mode == ModeSkinAnalysis && image != "" {
		analysis, err := c.gen.SendVisionAnalysis(ctx, stripDataURI(image), catalog)
		if err != nil {
			return Message{Role: RoleModel, Text: apologyVision}
		}
		return Message{Role: RoleModel, Text: analysis}
	}

	chatReply, err := c.gen.SendChat(ctx, history, text, catalog)
	if err != nil {
		apology := apologyThinking
		if errors.Is(err, genai.ErrMalformedResponse) {
			apology = apologyConnecting
		}
		return Message{Role: RoleModel, Text: apology}
	}

	recs := recommended.Resolve(chatReply.RecommendedProductIDs, catalog)
	return Message{
		Role:                    RoleModel,
		Text:                    chatReply.Text,
		IsProductRecommendation: len(recs) > 0,
		RecommendedProductIDs:   chatReply.RecommendedProductIDs,
		RecommendedProducts:     recs,
	}
}

// OpenCamera acquires the capture device for skin analysis.
func (c *Controller) OpenCamera(ctx context.Context) error {
	if c.camera == nil {
		return camera.ErrDevice
	}
	return c.camera.Open(ctx)
}

// CaptureToAttachment snapshots the live frame and stages it as the pending
// attachment. The capture itself always stops the camera.
func (c *Controller) CaptureToAttachment() (string, error) {
	if c.camera == nil {
		return "", camera.ErrDevice
	}
	if c.Mode() != ModeSkinAnalysis {
		return "", ErrNotSkinMode
	}
	uri, err := c.camera.Capture()
	if err != nil {
		return "", err
	}
	if err := c.AttachImage(uri); err != nil {
		return "", err
	}
	return uri, nil
}

// CloseCamera releases the capture device without capturing.
func (c *Controller) CloseCamera() {
	if c.camera != nil {
		c.camera.Close()
	}
}

// Close tears the controller down: the camera is always released and any
// in-flight reply is discarded instead of appended.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.CloseCamera()
}

// stripDataURI drops the "data:image/jpeg;base64," prefix; the provider wants
// raw base64.
func stripDataURI(s string) string {
	if i := strings.IndexByte(s, ','); i >= 0 {
		return s[i+1:]
	}
	return s
}
