// Package media decodes uploaded photos, derives their web and thumbnail
// variants and stores all of them in an ObjectStore.
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"path"
	"strings"
	"studiohub/pkg/domain"
	"studiohub/pkg/logger"
	"studiohub/pkg/serrors"

	// registered decoders
	_ "image/gif"
	_ "image/png"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	DefaultWebMaxDimension       = 2048
	DefaultThumbnailMaxDimension = 400
	DefaultMaxPixels             = 100_000_000
)

// DecodeError reports an upload that is not a readable image.
type DecodeError struct {
	Filename string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode %q: %v", e.Filename, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Target identifies the photo whose variants are produced.
type Target struct {
	TenantID  domain.TenantID
	GalleryID domain.GalleryID
	PhotoID   domain.PhotoID
	Filename  string
}

// prefix is the key directory shared by every variant of the photo.
func (t Target) prefix() string {
	return path.Join("tenants", t.TenantID.String(), "galleries", t.GalleryID.String(), t.PhotoID.String())
}

// Variant is one stored object.
type Variant struct {
	Key         string
	Width       int
	Height      int
	Size        int64
	ContentType string
}

// Variants are the stored objects of one photo.
type Variants struct {
	Original  Variant
	Web       Variant
	Thumbnail Variant
}

func (v Variants) keys() []string {
	keys := make([]string, 0, 3)
	for _, k := range []string{v.Original.Key, v.Web.Key, v.Thumbnail.Key} {
		if k != "" {
			keys = append(keys, k)
		}
	}

	return keys
}

// Options tune variant generation. Zero values fall back to the defaults.
type Options struct {
	WebMaxDimension       int
	ThumbnailMaxDimension int
	WebQuality            int
	ThumbnailQuality      int
	// MaxPixels rejects images whose width*height exceeds it before decoding.
	MaxPixels int
}

func (o Options) withDefaults() Options {
	if o.WebMaxDimension <= 0 {
		o.WebMaxDimension = DefaultWebMaxDimension
	}
	if o.ThumbnailMaxDimension <= 0 {
		o.ThumbnailMaxDimension = DefaultThumbnailMaxDimension
	}
	if o.WebQuality <= 0 {
		o.WebQuality = 85
	}
	if o.ThumbnailQuality <= 0 {
		o.ThumbnailQuality = 80
	}
	if o.MaxPixels <= 0 {
		o.MaxPixels = DefaultMaxPixels
	}

	return o
}

// ImageProcessor is the Processor used in production.
type ImageProcessor struct {
	store   ObjectStore
	options Options
}

var _ Processor = (*ImageProcessor)(nil)

func NewProcessor(store ObjectStore, opts Options) *ImageProcessor {
	return &ImageProcessor{store: store, options: opts.withDefaults()}
}

func (p *ImageProcessor) Process(ctx context.Context, data []byte, target Target) (Variants, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Variants{}, serrors.Wrap(serrors.ErrBadRequest,
			&DecodeError{Filename: target.Filename, Err: err}, "unsupported image")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > p.options.MaxPixels {
		return Variants{}, serrors.Wrap(serrors.ErrBadRequest,
			&DecodeError{Filename: target.Filename, Err: fmt.Errorf("image is %dx%d", cfg.Width, cfg.Height)},
			"image dimensions are not supported")
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Variants{}, serrors.Wrap(serrors.ErrBadRequest,
			&DecodeError{Filename: target.Filename, Err: err}, "corrupt image")
	}

	web, err := encodeJPEG(resize(src, p.options.WebMaxDimension, draw.CatmullRom), p.options.WebQuality)
	if err != nil {
		return Variants{}, err
	}
	thumb, err := encodeJPEG(resize(src, p.options.ThumbnailMaxDimension, draw.ApproxBiLinear), p.options.ThumbnailQuality)
	if err != nil {
		return Variants{}, err
	}

	prefix := target.prefix()
	uploads := []struct {
		v    Variant
		data []byte
	}{
		{Variant{
			Key:         path.Join(prefix, "original"+originalExt(format, target.Filename)),
			Width:       cfg.Width,
			Height:      cfg.Height,
			ContentType: "image/" + format,
		}, data},
		{Variant{Key: path.Join(prefix, "web.jpg"), Width: web.width, Height: web.height, ContentType: "image/jpeg"}, web.data},
		{Variant{Key: path.Join(prefix, "thumb.jpg"), Width: thumb.width, Height: thumb.height, ContentType: "image/jpeg"}, thumb.data},
	}

	var out Variants
	stored := []*Variant{&out.Original, &out.Web, &out.Thumbnail}
	for i, u := range uploads {
		u.v.Size = int64(len(u.data))
		if err := p.store.Put(ctx, u.v.Key, bytes.NewReader(u.data), u.v.Size, u.v.ContentType); err != nil {
			if rmErr := p.Remove(ctx, out); rmErr != nil {
				logger.Warn(ctx, "could not remove partially uploaded photo",
					zap.String("photoID", target.PhotoID.String()), zap.Error(rmErr))
			}

			return Variants{}, fmt.Errorf("could not upload %s: %w", u.v.Key, err)
		}
		*stored[i] = u.v
	}

	return out, nil
}

func (p *ImageProcessor) Remove(ctx context.Context, v Variants) error {
	var errs []error
	for _, key := range v.keys() {
		if err := p.store.Delete(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("could not delete %s: %w", key, err))
		}
	}

	return errors.Join(errs...)
}

// Fit returns w x h scaled down to fit in a limit x limit square keeping the
// aspect ratio. Images that already fit are returned unchanged.
func Fit(w, h, limit int) (int, int) {
	if w <= limit && h <= limit {
		return w, h
	}
	if w >= h {
		return limit, max(1, h*limit/w)
	}

	return max(1, w*limit/h), limit
}

func resize(src image.Image, limit int, scaler draw.Scaler) image.Image {
	b := src.Bounds()
	w, h := Fit(b.Dx(), b.Dy(), limit)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	scaler.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	return dst
}

type encoded struct {
	data          []byte
	width, height int
}

func encodeJPEG(img image.Image, quality int) (encoded, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return encoded{}, fmt.Errorf("could not encode jpeg: %w", err)
	}
	b := img.Bounds()

	return encoded{data: buf.Bytes(), width: b.Dx(), height: b.Dy()}, nil
}

func originalExt(format, filename string) string {
	if ext := strings.ToLower(path.Ext(filename)); ext != "" {
		switch {
		case format == "jpeg" && (ext == ".jpg" || ext == ".jpeg"):
			return ext
		case "."+format == ext:
			return ext
		}
	}
	if format == "jpeg" {
		return ".jpg"
	}

	return "." + format
}
