package sources

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"strings"
	"time"

	"github.com/Hikari118/mercari-build-training/pkg/data"
	"github.com/Hikari118/mercari-build-training/pkg/utils"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const DefaultAPIURL = "http://localhost:9000"

// Mercari talks to the simple-mercari backend.
type Mercari struct {
	api *utils.API
}

func NewMercari(baseURL string, timeout time.Duration) *Mercari {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &Mercari{api: utils.NewAPI(strings.TrimRight(baseURL, "/"), timeout)}
}

func (m *Mercari) FetchItems(ctx context.Context) (*data.Items, error) {
	var items data.Items
	if err := m.api.Get(ctx, "/items", nil, &items); err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}
	if items.Items == nil {
		items.Items = []data.Item{}
	}
	return &items, nil
}

func (m *Mercari) ImageURL(imageName string) string {
	return fmt.Sprintf("%s/image/%s", m.api.BaseURL(), url.PathEscape(imageName))
}

// ProbeImage loads the image at rawURL far enough to know it can be displayed.
func (m *Mercari) ProbeImage(ctx context.Context, rawURL string) error {
	body, err := m.api.Open(ctx, rawURL, "image/*")
	if err != nil {
		return fmt.Errorf("load image: %w", err)
	}
	defer body.Close()

	if _, _, err := image.DecodeConfig(body); err != nil {
		return fmt.Errorf("decode image %s: %w", rawURL, err)
	}
	return nil
}
