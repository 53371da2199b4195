package cdn

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/cloudfront"
	"github.com/aws/aws-sdk-go/service/cloudfront/cloudfrontiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/plume/internal/logger"
)

type fakeCloudFront struct {
	cloudfrontiface.CloudFrontAPI

	created   []*cloudfront.CreateInvalidationInput
	createErr error

	status  string
	getErr  error
	waited  []*cloudfront.GetInvalidationInput
	waitErr error
}

func (f *fakeCloudFront) CreateInvalidationWithContext(_ aws.Context, in *cloudfront.CreateInvalidationInput, _ ...request.Option) (*cloudfront.CreateInvalidationOutput, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, in)
	return &cloudfront.CreateInvalidationOutput{
		Invalidation: &cloudfront.Invalidation{
			Id:                aws.String("I2J0I21PCUYOIK"),
			Status:            aws.String("InProgress"),
			CreateTime:        aws.Time(time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)),
			InvalidationBatch: in.InvalidationBatch,
		},
	}, nil
}

func (f *fakeCloudFront) GetInvalidationWithContext(_ aws.Context, in *cloudfront.GetInvalidationInput, _ ...request.Option) (*cloudfront.GetInvalidationOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &cloudfront.GetInvalidationOutput{
		Invalidation: &cloudfront.Invalidation{
			Id:     in.Id,
			Status: aws.String(f.status),
		},
	}, nil
}

func (f *fakeCloudFront) WaitUntilInvalidationCompletedWithContext(_ aws.Context, in *cloudfront.GetInvalidationInput, _ ...request.WaiterOption) error {
	f.waited = append(f.waited, in)
	return f.waitErr
}

func newTestInvalidator(api cloudfrontiface.CloudFrontAPI) *Invalidator {
	inv := NewWithAPI(api, nil)
	inv.newRef = func() string { return "generated-ref" }
	return inv
}

func TestInvalidate_DefaultsToEverything(t *testing.T) {
	api := &fakeCloudFront{}
	inv := newTestInvalidator(api)

	got, err := inv.Invalidate(context.Background(), Request{DistributionID: "E82N9W7N8X7BR"})
	require.NoError(t, err)

	require.Len(t, api.created, 1)
	in := api.created[0]
	assert.Equal(t, "E82N9W7N8X7BR", aws.StringValue(in.DistributionId))
	assert.Equal(t, int64(1), aws.Int64Value(in.InvalidationBatch.Paths.Quantity))
	assert.Equal(t, []string{"/*"}, aws.StringValueSlice(in.InvalidationBatch.Paths.Items))
	assert.Equal(t, "generated-ref", aws.StringValue(in.InvalidationBatch.CallerReference))

	assert.Equal(t, "I2J0I21PCUYOIK", got.ID)
	assert.Equal(t, "InProgress", got.Status)
	assert.False(t, got.Completed())
	assert.Equal(t, "generated-ref", got.CallerReference)
	assert.Equal(t, []string{"/*"}, got.Paths)
	assert.Equal(t, 2026, got.CreateTime.Year())
}

func TestInvalidate_CallerSuppliedReferenceAndPaths(t *testing.T) {
	api := &fakeCloudFront{}
	inv := newTestInvalidator(api)

	_, err := inv.Invalidate(context.Background(), Request{
		DistributionID:  "E1",
		Paths:           []string{"/index.html", "/feeds/*"},
		CallerReference: "deploy-42",
	})
	require.NoError(t, err)

	batch := api.created[0].InvalidationBatch
	assert.Equal(t, "deploy-42", aws.StringValue(batch.CallerReference))
	assert.Equal(t, int64(2), aws.Int64Value(batch.Paths.Quantity))
	assert.Equal(t, []string{"/index.html", "/feeds/*"}, aws.StringValueSlice(batch.Paths.Items))
}

func TestInvalidate_DefaultReferenceIsUUID(t *testing.T) {
	api := &fakeCloudFront{}
	inv := NewWithAPI(api, nil)

	first, err := inv.Invalidate(context.Background(), Request{DistributionID: "E1"})
	require.NoError(t, err)
	second, err := inv.Invalidate(context.Background(), Request{DistributionID: "E1"})
	require.NoError(t, err)

	assert.Len(t, first.CallerReference, 36)
	assert.NotEqual(t, first.CallerReference, second.CallerReference)
}

func TestInvalidate_Errors(t *testing.T) {
	apiErr := errors.New("AccessDenied")

	tests := []struct {
		name    string
		req     Request
		api     *fakeCloudFront
		wantErr error
	}{
		{
			name:    "missing distribution",
			req:     Request{},
			api:     &fakeCloudFront{},
			wantErr: ErrMissingDistribution,
		},
		{
			name:    "relative path",
			req:     Request{DistributionID: "E1", Paths: []string{"index.html"}},
			api:     &fakeCloudFront{},
			wantErr: ErrInvalidPath,
		},
		{
			name:    "api failure",
			req:     Request{DistributionID: "E1"},
			api:     &fakeCloudFront{createErr: apiErr},
			wantErr: apiErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestInvalidator(tt.api).Invalidate(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, tt.api.created)
		})
	}
}

func TestInvalidate_Logs(t *testing.T) {
	var buf bytes.Buffer
	inv := NewWithAPI(&fakeCloudFront{}, logger.New(logger.LevelDebug, &buf))

	_, err := inv.Invalidate(context.Background(), Request{DistributionID: "E1"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "creating invalidation")
	assert.Contains(t, buf.String(), "invalidation created")
	assert.Contains(t, buf.String(), "distribution=E1")
	assert.Contains(t, buf.String(), "id=I2J0I21PCUYOIK")
}

func TestStatus(t *testing.T) {
	inv := newTestInvalidator(&fakeCloudFront{status: "Completed"})

	got, err := inv.Status(context.Background(), "E1", "I1")
	require.NoError(t, err)
	assert.Equal(t, "I1", got.ID)
	assert.True(t, got.Completed())

	_, err = inv.Status(context.Background(), "", "I1")
	assert.ErrorIs(t, err, ErrMissingDistribution)

	_, err = inv.Status(context.Background(), "E1", " ")
	assert.ErrorIs(t, err, ErrMissingInvalidation)

	boom := errors.New("NoSuchInvalidation")
	_, err = newTestInvalidator(&fakeCloudFront{getErr: boom}).Status(context.Background(), "E1", "I1")
	assert.ErrorIs(t, err, boom)
}

func TestWait(t *testing.T) {
	api := &fakeCloudFront{}
	inv := newTestInvalidator(api)

	require.NoError(t, inv.Wait(context.Background(), "E1", "I1"))
	require.Len(t, api.waited, 1)
	assert.Equal(t, "I1", aws.StringValue(api.waited[0].Id))

	api.waitErr = errors.New("ResourceNotReady")
	err := inv.Wait(context.Background(), "E1", "I1")
	assert.ErrorIs(t, err, api.waitErr)

	assert.ErrorIs(t, inv.Wait(context.Background(), "", "I1"), ErrMissingDistribution)
}
