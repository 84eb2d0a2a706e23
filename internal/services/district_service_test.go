package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"visitnepal/internal/flow/flowtest"
	"visitnepal/internal/models/request_models"
	"visitnepal/internal/models/response_models"
	mem "visitnepal/pkg/memcache"
	"visitnepal/pkg/utils"
)

func kaskiDetails() response_models.DistrictDetailsResponse {
	return response_models.DistrictDetailsResponse{
		Name:           "Pokhara Valley",
		Tagline:        "Lakes beneath the Annapurnas.",
		Attractions:    []string{"Phewa Lake", "Sarangkot", "World Peace Pagoda"},
		Accommodations: []string{"Lakeside Hotels", "Homestays"},
		Activities:     []string{"Paragliding", "Boating", "Trekking"},
		Food:           []string{"Thakali Thali", "Sel Roti"},
	}
}

func newDistrictService(client *flowtest.FakeClient, cache mem.FlowCacheStore) DistrictServiceInterface {
	return NewDistrictService(newTestRunner(client), cache, zap.NewNop())
}

func TestGetDistrictDetails_ReattachesName(t *testing.T) {
	client := flowtest.Reply(kaskiDetails())
	svc := newDistrictService(client, mem.Disabled{})

	out, err := svc.GetDistrictDetails(context.Background(), request_models.DistrictDetailsRequest{DistrictName: "  kaski "})
	require.NoError(t, err)
	assert.Equal(t, "Kaski", out.Name)
	assert.Len(t, out.Attractions, 3)
	assert.Contains(t, client.LastRequest().Prompt, `"Kaski"`)
}

func TestGetDistrictDetails_InvalidDistrict(t *testing.T) {
	client := flowtest.Reply(kaskiDetails())
	svc := newDistrictService(client, mem.Disabled{})

	_, err := svc.GetDistrictDetails(context.Background(), request_models.DistrictDetailsRequest{DistrictName: "Atlantis"})
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	assert.ErrorIs(t, err, utils.ErrUnknownDistrict)

	_, err = svc.GetDistrictDetails(context.Background(), request_models.DistrictDetailsRequest{DistrictName: " "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "districtName is required")
	assert.Zero(t, client.Calls())
}

func TestGetDistrictDetails_EmptyListIsSchemaMismatch(t *testing.T) {
	details := kaskiDetails()
	details.Food = nil
	svc := newDistrictService(flowtest.Reply(details), mem.Disabled{})

	_, err := svc.GetDistrictDetails(context.Background(), request_models.DistrictDetailsRequest{DistrictName: "Kaski"})
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrUnexpectedBehaviorOfAI)
}

func TestGetDistrictDetails_Cached(t *testing.T) {
	client := flowtest.Reply(kaskiDetails())
	svc := newDistrictService(client, mem.NewFlowCache(time.Minute, time.Minute))

	for _, name := range []string{"Kaski", "kaski", " KASKI "} {
		out, err := svc.GetDistrictDetails(context.Background(), request_models.DistrictDetailsRequest{DistrictName: name})
		require.NoError(t, err)
		assert.Equal(t, "Kaski", out.Name)
	}
	assert.Equal(t, 1, client.Calls())
}

func TestGenerateDistrictImage(t *testing.T) {
	client := &flowtest.FakeClient{Image: &utils.GeneratedImage{MIMEType: "image/png", Data: []byte("png")}}
	svc := newDistrictService(client, mem.Disabled{})

	out, err := svc.GenerateDistrictImage(context.Background(), request_models.DistrictImageRequest{DistrictName: "mustang"})
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,cG5n", out.ImageURL)
	require.Len(t, client.ImagePrompts, 1)
	assert.Contains(t, client.ImagePrompts[0], "Mustang district")
}

func TestGenerateDistrictImage_Failures(t *testing.T) {
	t.Run("provider error", func(t *testing.T) {
		svc := newDistrictService(&flowtest.FakeClient{ImageErr: errors.New("quota exceeded")}, mem.Disabled{})

		_, err := svc.GenerateDistrictImage(context.Background(), request_models.DistrictImageRequest{DistrictName: "Mustang"})
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrAIServiceUnavailable)
		assert.Contains(t, err.Error(), "Failed to generate image for Mustang. Reason:")
		assert.Contains(t, err.Error(), "quota exceeded")

		var imgErr *DistrictImageError
		require.ErrorAs(t, err, &imgErr)
		assert.Equal(t, "Mustang", imgErr.District)
	})

	t.Run("unsupported provider", func(t *testing.T) {
		svc := newDistrictService(&flowtest.FakeClient{}, mem.Disabled{})

		_, err := svc.GenerateDistrictImage(context.Background(), request_models.DistrictImageRequest{DistrictName: "Mustang"})
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrImageGenerationUnsupported)
		assert.NotErrorIs(t, err, utils.ErrAIServiceUnavailable)
	})

	t.Run("unknown district", func(t *testing.T) {
		client := &flowtest.FakeClient{}
		svc := newDistrictService(client, mem.Disabled{})

		_, err := svc.GenerateDistrictImage(context.Background(), request_models.DistrictImageRequest{DistrictName: "Gotham"})
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrUnknownDistrict)
		assert.Empty(t, client.ImagePrompts)
	})
}

func TestExploreDistrict(t *testing.T) {
	t.Run("details and image", func(t *testing.T) {
		client := flowtest.Reply(kaskiDetails())
		client.Image = &utils.GeneratedImage{MIMEType: "image/png", Data: []byte("png")}
		svc := newDistrictService(client, mem.Disabled{})

		out, err := svc.ExploreDistrict(context.Background(), request_models.DistrictRequest{DistrictName: "Kaski"})
		require.NoError(t, err)
		assert.Equal(t, "Kaski", out.Details.Name)
		assert.Equal(t, "data:image/png;base64,cG5n", out.ImageURL)
		assert.Empty(t, out.ImageError)
	})

	t.Run("image failure is tolerated", func(t *testing.T) {
		client := flowtest.Reply(kaskiDetails())
		client.ImageErr = errors.New("safety block")
		svc := newDistrictService(client, mem.Disabled{})

		out, err := svc.ExploreDistrict(context.Background(), request_models.DistrictRequest{DistrictName: "Kaski"})
		require.NoError(t, err)
		assert.Equal(t, "Kaski", out.Details.Name)
		assert.Empty(t, out.ImageURL)
		assert.Contains(t, out.ImageError, "Failed to generate image for Kaski")
	})

	t.Run("details failure fails the call", func(t *testing.T) {
		client := &flowtest.FakeClient{Err: errors.New("down")}
		client.Image = &utils.GeneratedImage{MIMEType: "image/png", Data: []byte("png")}
		svc := newDistrictService(client, mem.Disabled{})

		_, err := svc.ExploreDistrict(context.Background(), request_models.DistrictRequest{DistrictName: "Kaski"})
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrAIServiceUnavailable)
		assert.Empty(t, client.ImagePrompts)
	})
}
