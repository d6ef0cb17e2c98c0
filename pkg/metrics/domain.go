package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "studiohub"

// Domain holds the business counters. All methods are safe on a Domain built
// from a no-op meter provider.
type Domain struct {
	galleriesCreated  metric.Int64Counter
	galleryEvents     metric.Int64Counter
	photosUploaded    metric.Int64Counter
	ordersPlaced      metric.Int64Counter
	orderRevenue      metric.Int64Counter
	paymentsConfirmed metric.Int64Counter
	codeCollisions    metric.Int64Counter
}

// NewDomain creates the business counters on mp.
func NewDomain(mp metric.MeterProvider) (*Domain, error) {
	meter := mp.Meter(meterName)

	var (
		d   Domain
		err error
	)
	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&d.galleriesCreated, "galleries_created", "Galleries created."},
		{&d.galleryEvents, "gallery_events", "Gallery lifecycle transitions."},
		{&d.photosUploaded, "photos_uploaded", "Photos stored after variant generation."},
		{&d.ordersPlaced, "orders_placed", "Orders placed by gallery clients."},
		{&d.orderRevenue, "order_revenue_minor", "Order totals in minor currency units."},
		{&d.paymentsConfirmed, "payments_confirmed", "Payments applied to orders."},
		{&d.codeCollisions, "gallery_code_collisions", "Generated gallery codes that were already taken."},
	}
	for _, c := range counters {
		*c.dst, err = meter.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			return nil, fmt.Errorf("could not create %s counter: %w", c.name, err)
		}
	}

	return &d, nil
}

// NoopDomain returns counters that record nothing.
func NoopDomain() *Domain {
	d, _ := NewDomain(noop.NewMeterProvider())

	return d
}

func (d *Domain) GalleryCreated(ctx context.Context) {
	d.galleriesCreated.Add(ctx, 1)
}

func (d *Domain) GalleryEvent(ctx context.Context, event string) {
	d.galleryEvents.Add(ctx, 1, metric.WithAttributes(attribute.String("event", event)))
}

func (d *Domain) CodeCollision(ctx context.Context) {
	d.codeCollisions.Add(ctx, 1)
}

func (d *Domain) PhotoUploaded(ctx context.Context) {
	d.photosUploaded.Add(ctx, 1)
}

// OrderPlaced counts the order and adds its total to the revenue counter.
func (d *Domain) OrderPlaced(ctx context.Context, currency string, total int64) {
	attrs := metric.WithAttributes(attribute.String("currency", currency))
	d.ordersPlaced.Add(ctx, 1, attrs)
	d.orderRevenue.Add(ctx, total, attrs)
}

func (d *Domain) PaymentConfirmed(ctx context.Context) {
	d.paymentsConfirmed.Add(ctx, 1)
}
