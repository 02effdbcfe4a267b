package admin

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"eyewear-store/internal/kvstore"
	"eyewear-store/internal/models"
)

const (
	DefaultFolder  = "general"
	folderMarker   = ".folder"
	maxMediaBytes  = 5 << 20
	dataURLBase64  = ";base64,"
	imageMIMEStart = "data:image/"
)

var (
	ErrInvalidDataURL = errors.New("media must be a base64 image data URL")
	ErrMediaTooLarge  = errors.New("media exceeds the 5 MB limit")
	ErrFolderName     = errors.New("folder name is required")
)

type Media struct {
	*Table[models.MediaItem]
	now func() time.Time
}

func NewMedia(store *kvstore.Store) *Media {
	return &Media{Table: NewTable(store, KeyMedia, seedMedia), now: time.Now}
}

// Upload guarda el data URL como un item nuevo; el tamaño es una estimación
// a partir del largo del base64
func (m *Media) Upload(ctx context.Context, name, dataURL, folder string) (models.MediaItem, error) {
	if !strings.HasPrefix(dataURL, imageMIMEStart) {
		return models.MediaItem{}, ErrInvalidDataURL
	}
	i := strings.Index(dataURL, dataURLBase64)
	if i < 0 || i+len(dataURLBase64) == len(dataURL) {
		return models.MediaItem{}, ErrInvalidDataURL
	}

	size := EstimateSize(dataURL[i+len(dataURLBase64):])
	if size > maxMediaBytes {
		return models.MediaItem{}, ErrMediaTooLarge
	}

	folder = strings.TrimSpace(folder)
	if folder == "" {
		folder = DefaultFolder
	}
	item := models.MediaItem{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(name),
		URL:        dataURL,
		Folder:     folder,
		Size:       size,
		UploadedAt: m.now(),
	}
	m.Insert(ctx, item)
	return item, nil
}

// CreateFolder inserta el item marcador de la carpeta
func (m *Media) CreateFolder(ctx context.Context, name string) (models.MediaItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.MediaItem{}, ErrFolderName
	}
	item := models.MediaItem{
		ID:         uuid.NewString(),
		Name:       folderMarker,
		Folder:     name,
		UploadedAt: m.now(),
		IsFolder:   true,
	}
	m.Insert(ctx, item)
	return item, nil
}

// Files retorna los archivos (sin marcadores), opcionalmente de una carpeta
func (m *Media) Files(ctx context.Context, q, folder string) []models.MediaItem {
	out := make([]models.MediaItem, 0)
	for _, item := range m.Search(ctx, q) {
		if item.IsFolder {
			continue
		}
		if folder != "" && item.Folder != folder {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Folders deriva las carpetas de los items, ordenadas
func (m *Media) Folders(ctx context.Context) []string {
	seen := map[string]bool{}
	out := make([]string, 0)
	for _, item := range m.Load(ctx) {
		if item.Folder == "" || seen[item.Folder] {
			continue
		}
		seen[item.Folder] = true
		out = append(out, item.Folder)
	}
	sort.Strings(out)
	return out
}

// EstimateSize calcula los bytes decodificados de un payload base64
func EstimateSize(payload string) int64 {
	n := int64(len(payload)) * 3 / 4
	switch {
	case strings.HasSuffix(payload, "=="):
		n -= 2
	case strings.HasSuffix(payload, "="):
		n--
	}
	if n < 0 {
		return 0
	}
	return n
}
