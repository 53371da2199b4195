// Package cdn invalidates cached content on a CloudFront distribution after
// the site is published.
//
// Credentials, request signing and retries come from the AWS SDK session.
package cdn

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudfront"
	"github.com/aws/aws-sdk-go/service/cloudfront/cloudfrontiface"
	"github.com/google/uuid"

	"github.com/simonhull/plume/internal/logger"
)

var (
	// ErrMissingDistribution is returned when no distribution ID is given.
	ErrMissingDistribution = errors.New("distribution id is required")

	// ErrInvalidPath is returned for invalidation paths not starting with '/'.
	ErrInvalidPath = errors.New("invalidation path must start with '/'")

	// ErrMissingInvalidation is returned when an invalidation ID is empty.
	ErrMissingInvalidation = errors.New("invalidation id is required")
)

// DefaultPaths invalidates everything.
var DefaultPaths = []string{"/*"}

// Request describes one invalidation batch.
type Request struct {
	DistributionID string
	Paths          []string
	// CallerReference makes the request idempotent. A random UUID is used
	// when empty.
	CallerReference string
}

// Invalidation is the state of an invalidation as reported by CloudFront.
type Invalidation struct {
	ID              string
	Status          string
	CreateTime      time.Time
	CallerReference string
	Paths           []string
}

// Completed reports whether CloudFront has finished the invalidation.
func (i Invalidation) Completed() bool {
	return i.Status == "Completed"
}

// Invalidator issues CloudFront invalidations.
type Invalidator struct {
	api    cloudfrontiface.CloudFrontAPI
	log    logger.Logger
	newRef func() string
}

// Options configures New.
type Options struct {
	// Region is optional; CloudFront is a global service.
	Region string
	Logger logger.Logger
}

// New creates an Invalidator using the default AWS credential chain.
func New(opts Options) (*Invalidator, error) {
	cfg := aws.NewConfig()
	if opts.Region != "" {
		cfg = cfg.WithRegion(opts.Region)
	}

	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            *cfg,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, fmt.Errorf("creating aws session: %w", err)
	}

	return NewWithAPI(cloudfront.New(sess), opts.Logger), nil
}

// NewWithAPI creates an Invalidator over any CloudFront client.
func NewWithAPI(api cloudfrontiface.CloudFrontAPI, log logger.Logger) *Invalidator {
	if log == nil {
		log = logger.NewSilent()
	}
	return &Invalidator{
		api:    api,
		log:    log,
		newRef: uuid.NewString,
	}
}

// Invalidate creates one invalidation batch and returns it as accepted.
func (inv *Invalidator) Invalidate(ctx context.Context, req Request) (Invalidation, error) {
	if strings.TrimSpace(req.DistributionID) == "" {
		return Invalidation{}, ErrMissingDistribution
	}

	paths := req.Paths
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	for _, p := range paths {
		if !strings.HasPrefix(p, "/") {
			return Invalidation{}, fmt.Errorf("%w: %q", ErrInvalidPath, p)
		}
	}

	ref := req.CallerReference
	if ref == "" {
		ref = inv.newRef()
	}

	log := inv.log.WithFields(logger.F("distribution", req.DistributionID))
	log.Debug("creating invalidation", logger.F("paths", strings.Join(paths, ",")), logger.F("caller_reference", ref))

	out, err := inv.api.CreateInvalidationWithContext(ctx, &cloudfront.CreateInvalidationInput{
		DistributionId: aws.String(req.DistributionID),
		InvalidationBatch: &cloudfront.InvalidationBatch{
			CallerReference: aws.String(ref),
			Paths: &cloudfront.Paths{
				Quantity: aws.Int64(int64(len(paths))),
				Items:    aws.StringSlice(paths),
			},
		},
	})
	if err != nil {
		return Invalidation{}, fmt.Errorf("creating invalidation on %s: %w", req.DistributionID, err)
	}
	if out.Invalidation == nil {
		return Invalidation{}, fmt.Errorf("creating invalidation on %s: empty response", req.DistributionID)
	}

	result := fromAPI(out.Invalidation)
	log.Info("invalidation created", logger.F("id", result.ID), logger.F("status", result.Status))
	return result, nil
}

// Status fetches the current state of an invalidation.
func (inv *Invalidator) Status(ctx context.Context, distributionID, id string) (Invalidation, error) {
	if err := checkIDs(distributionID, id); err != nil {
		return Invalidation{}, err
	}

	out, err := inv.api.GetInvalidationWithContext(ctx, &cloudfront.GetInvalidationInput{
		DistributionId: aws.String(distributionID),
		Id:             aws.String(id),
	})
	if err != nil {
		return Invalidation{}, fmt.Errorf("getting invalidation %s: %w", id, err)
	}
	if out.Invalidation == nil {
		return Invalidation{}, fmt.Errorf("getting invalidation %s: empty response", id)
	}
	return fromAPI(out.Invalidation), nil
}

// Wait blocks until the invalidation completes, ctx is done, or the SDK
// waiter gives up.
func (inv *Invalidator) Wait(ctx context.Context, distributionID, id string) error {
	if err := checkIDs(distributionID, id); err != nil {
		return err
	}

	inv.log.Debug("waiting for invalidation", logger.F("distribution", distributionID), logger.F("id", id))
	err := inv.api.WaitUntilInvalidationCompletedWithContext(ctx, &cloudfront.GetInvalidationInput{
		DistributionId: aws.String(distributionID),
		Id:             aws.String(id),
	})
	if err != nil {
		return fmt.Errorf("waiting for invalidation %s: %w", id, err)
	}
	return nil
}

func checkIDs(distributionID, id string) error {
	if strings.TrimSpace(distributionID) == "" {
		return ErrMissingDistribution
	}
	if strings.TrimSpace(id) == "" {
		return ErrMissingInvalidation
	}
	return nil
}

func fromAPI(in *cloudfront.Invalidation) Invalidation {
	out := Invalidation{
		ID:         aws.StringValue(in.Id),
		Status:     aws.StringValue(in.Status),
		CreateTime: aws.TimeValue(in.CreateTime),
	}
	if batch := in.InvalidationBatch; batch != nil {
		out.CallerReference = aws.StringValue(batch.CallerReference)
		if batch.Paths != nil {
			out.Paths = aws.StringValueSlice(batch.Paths.Items)
		}
	}
	return out
}
