package sources

import (
	"context"

	"github.com/Hikari118/mercari-build-training/pkg/data"
)

type Source interface {
	FetchItems(ctx context.Context) (*data.Items, error)
	ImageURL(imageName string) string
	ProbeImage(ctx context.Context, url string) error
}
