// Package generationsvc - Test pipeline sinh nội dung với fake provider/ledger:
// kiểm tra số dư trước khi gọi provider, trừ credit sau khi provider thành công,
// và hoàn credit khi ghi artifact thất bại.
package generationsvc

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	campaignmodels "adcraft/internal/api/campaign/models"
	contentmodels "adcraft/internal/api/content/models"
	creditsvc "adcraft/internal/api/credit/service"
	"adcraft/internal/common"
	"adcraft/internal/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeCampaigns trả về một campaign cố định theo ID
type fakeCampaigns struct {
	campaign campaignmodels.Campaign
	err      error
	calls    int
}

func (f *fakeCampaigns) FindOneById(ctx context.Context, id primitive.ObjectID) (campaignmodels.Campaign, error) {
	f.calls++
	if f.err != nil {
		return campaignmodels.Campaign{}, f.err
	}
	c := f.campaign
	c.ID = id
	return c, nil
}

// fakeLedger mô phỏng trừ credit có điều kiện: chỉ trừ khi số dư đủ,
// giống semantics của filtered update trên MongoDB.
type fakeLedger struct {
	mu      sync.Mutex
	balance int64

	chargeCalls int
	refundCalls int
	lastCharge  int64
	lastRefund  int64
	lastOp      string
	artifactIDs []primitive.ObjectID
}

func (f *fakeLedger) Charge(ctx context.Context, campaignID primitive.ObjectID, cost int64, operation string, artifactID primitive.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chargeCalls++
	if f.balance < cost {
		return 0, common.ErrInsufficientCredits
	}
	f.balance -= cost
	f.lastCharge = cost
	f.lastOp = operation
	f.artifactIDs = append(f.artifactIDs, artifactID)
	return f.balance, nil
}

func (f *fakeLedger) Refund(ctx context.Context, campaignID primitive.ObjectID, amount int64, operation string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refundCalls++
	f.balance += amount
	f.lastRefund = amount
	return f.balance, nil
}

// Các fake store đếm số lần insert và có thể ép lỗi
type fakeCaptionStore struct {
	calls int
	err   error
	last  contentmodels.Caption
}

func (f *fakeCaptionStore) InsertOne(ctx context.Context, data contentmodels.Caption) (contentmodels.Caption, error) {
	f.calls++
	if f.err != nil {
		return contentmodels.Caption{}, f.err
	}
	f.last = data
	return data, nil
}

type fakeScriptStore struct {
	calls int
	err   error
}

func (f *fakeScriptStore) InsertOne(ctx context.Context, data contentmodels.Script) (contentmodels.Script, error) {
	f.calls++
	if f.err != nil {
		return contentmodels.Script{}, f.err
	}
	return data, nil
}

type fakeImageStore struct {
	calls int
	err   error
	last  contentmodels.Image
}

func (f *fakeImageStore) InsertOne(ctx context.Context, data contentmodels.Image) (contentmodels.Image, error) {
	f.calls++
	if f.err != nil {
		return contentmodels.Image{}, f.err
	}
	f.last = data
	return data, nil
}

type fakeVideoStore struct {
	calls int
	err   error
	last  contentmodels.Video
}

func (f *fakeVideoStore) InsertOne(ctx context.Context, data contentmodels.Video) (contentmodels.Video, error) {
	f.calls++
	if f.err != nil {
		return contentmodels.Video{}, f.err
	}
	f.last = data
	return data, nil
}

// fakeText trả về văn bản cố định
type fakeText struct {
	calls int
	text  string
	err   error
}

func (f *fakeText) Complete(ctx context.Context, messages []provider.Message) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func (f *fakeText) ModelName() string { return "fake-model" }

// fakeImage trả về bytes cố định, ghi lại kích thước được yêu cầu
type fakeImage struct {
	calls      int
	data       []byte
	err        error
	lastWidth  int
	lastHeight int
}

func (f *fakeImage) Fetch(ctx context.Context, prompt string, width, height int) ([]byte, error) {
	f.calls++
	f.lastWidth = width
	f.lastHeight = height
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

type fakeComposer struct {
	calls int
	data  []byte
	err   error
}

func (f *fakeComposer) Compose(ctx context.Context, imageData []byte) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

type generationFixture struct {
	campaigns *fakeCampaigns
	ledger    *fakeLedger
	captions  *fakeCaptionStore
	scripts   *fakeScriptStore
	images    *fakeImageStore
	videos    *fakeVideoStore
	text      *fakeText
	image     *fakeImage
	composer  *fakeComposer
	svc       *GenerationService
}

func newGenerationFixture(credits int64) *generationFixture {
	f := &generationFixture{
		campaigns: &fakeCampaigns{campaign: campaignmodels.Campaign{
			BusinessName:   "Cafe Mặt Trời",
			BusinessType:   "coffee shop",
			Description:    "Specialty coffee",
			TargetAudience: "young professionals",
			Objective:      "brand awareness",
			Tone:           "friendly",
			Credits:        credits,
		}},
		ledger:   &fakeLedger{balance: credits},
		captions: &fakeCaptionStore{},
		scripts:  &fakeScriptStore{},
		images:   &fakeImageStore{},
		videos:   &fakeVideoStore{},
		text:     &fakeText{text: "Fresh coffee, every morning."},
		image:    &fakeImage{data: []byte("jpeg-bytes")},
		composer: &fakeComposer{data: []byte("mp4-bytes")},
	}
	f.svc = NewGenerationService(f.campaigns, f.ledger, f.captions, f.scripts, f.images, f.videos, f.text, f.image, f.composer)
	return f
}

func TestGenerateCaption_Success(t *testing.T) {
	f := newGenerationFixture(10)
	campaignID := primitive.NewObjectID()

	caption, err := f.svc.GenerateCaption(context.Background(), campaignID)
	require.NoError(t, err)

	assert.Equal(t, "Fresh coffee, every morning.", caption.Text)
	assert.Equal(t, "fake-model", caption.Source)
	assert.Equal(t, creditsvc.CostCaption, caption.CreditsUsed)
	assert.Equal(t, campaignID, caption.CampaignID)
	assert.False(t, caption.ID.IsZero(), "artifact phải có ID được gán trước khi insert")

	assert.Equal(t, 1, f.text.calls)
	assert.Equal(t, 1, f.ledger.chargeCalls)
	assert.Equal(t, 1, f.captions.calls)
	assert.Equal(t, int64(10-creditsvc.CostCaption), f.ledger.balance, "số dư phải giảm đúng chi phí caption")
	require.Len(t, f.ledger.artifactIDs, 1)
	assert.Equal(t, caption.ID, f.ledger.artifactIDs[0], "charge phải tham chiếu artifact được tạo")
}

func TestGenerateCaption_InsufficientCredits_NoProviderCall(t *testing.T) {
	// Caption tốn 5 credit; chiến dịch chỉ còn 3
	f := newGenerationFixture(3)

	_, err := f.svc.GenerateCaption(context.Background(), primitive.NewObjectID())
	require.ErrorIs(t, err, common.ErrInsufficientCredits)

	assert.Equal(t, 0, f.text.calls, "không được gọi provider khi số dư không đủ")
	assert.Equal(t, 0, f.ledger.chargeCalls, "không được trừ credit khi số dư không đủ")
	assert.Equal(t, 0, f.captions.calls, "không được ghi artifact khi số dư không đủ")
	assert.Equal(t, int64(3), f.ledger.balance, "số dư phải giữ nguyên")
}

func TestGenerateCaption_ProviderError_NoMutation(t *testing.T) {
	f := newGenerationFixture(10)
	f.text.err = common.ErrProviderTimeout

	_, err := f.svc.GenerateCaption(context.Background(), primitive.NewObjectID())
	require.Error(t, err)

	assert.Equal(t, 0, f.ledger.chargeCalls, "provider lỗi thì không được trừ credit")
	assert.Equal(t, 0, f.captions.calls)
	assert.Equal(t, int64(10), f.ledger.balance)
}

func TestGenerateCaption_InsertFailure_Refunds(t *testing.T) {
	f := newGenerationFixture(10)
	f.captions.err = errors.New("write conflict")

	_, err := f.svc.GenerateCaption(context.Background(), primitive.NewObjectID())
	require.Error(t, err)

	assert.Equal(t, 1, f.ledger.chargeCalls)
	assert.Equal(t, 1, f.ledger.refundCalls, "ghi artifact thất bại thì phải hoàn credit")
	assert.Equal(t, creditsvc.CostCaption, f.ledger.lastRefund)
	assert.Equal(t, int64(10), f.ledger.balance, "số dư sau hoàn phải về như cũ")
}

func TestGenerateCaption_CampaignNotFound(t *testing.T) {
	f := newGenerationFixture(10)
	f.campaigns.err = common.ErrNotFound

	_, err := f.svc.GenerateCaption(context.Background(), primitive.NewObjectID())
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, 0, f.text.calls)
}

func TestGenerateScript_Success(t *testing.T) {
	f := newGenerationFixture(10)
	campaignID := primitive.NewObjectID()

	script, err := f.svc.GenerateScript(context.Background(), campaignID, "promote our new espresso blend")
	require.NoError(t, err)

	assert.Equal(t, creditsvc.CostScript, script.CreditsUsed)
	assert.Contains(t, script.Prompt, "promote our new espresso blend")
	assert.Contains(t, script.Prompt, "Cafe Mặt Trời")
	assert.Equal(t, int64(0), f.ledger.balance, "script tốn 10 credit")
	assert.Equal(t, 1, f.scripts.calls)
}

func TestGenerateScript_InsufficientCredits(t *testing.T) {
	// Script tốn 10 credit; 5 là không đủ dù đủ cho caption
	f := newGenerationFixture(5)

	_, err := f.svc.GenerateScript(context.Background(), primitive.NewObjectID(), "anything")
	require.ErrorIs(t, err, common.ErrInsufficientCredits)
	assert.Equal(t, 0, f.text.calls)
	assert.Equal(t, 0, f.scripts.calls)
}

func TestGenerateImage_Success(t *testing.T) {
	f := newGenerationFixture(10)
	campaignID := primitive.NewObjectID()

	image, err := f.svc.GenerateImage(context.Background(), campaignID, "espresso on a wooden table",
		contentmodels.StyleLuxury, contentmodels.PlatformInstagram, contentmodels.ResolutionPortrait)
	require.NoError(t, err)

	assert.Equal(t, creditsvc.CostImage, image.CreditsUsed)
	assert.True(t, strings.HasPrefix(image.ImageURL, "data:image/jpeg;base64,"), "ảnh phải lưu dưới dạng data URI")
	assert.Equal(t, 512, f.image.lastWidth)
	assert.Equal(t, 768, f.image.lastHeight, "portrait phải là 512x768")
	assert.Contains(t, image.Prompt, "luxury premium advertisement")
	assert.Contains(t, image.Prompt, "instagram post")
	assert.Equal(t, int64(5), f.ledger.balance)
}

func TestGenerateImage_ExactBalance(t *testing.T) {
	// Số dư đúng bằng chi phí vẫn phải sinh được
	f := newGenerationFixture(5)

	_, err := f.svc.GenerateImage(context.Background(), primitive.NewObjectID(), "prompt",
		contentmodels.StyleProfessional, contentmodels.PlatformFacebook, contentmodels.ResolutionSquare)
	require.NoError(t, err)
	assert.Equal(t, int64(0), f.ledger.balance)
}

func TestGenerateImage_FetchError_NoCharge(t *testing.T) {
	f := newGenerationFixture(10)
	f.image.err = common.ErrProviderResponse

	_, err := f.svc.GenerateImage(context.Background(), primitive.NewObjectID(), "prompt",
		contentmodels.StyleCreative, contentmodels.PlatformTiktok, contentmodels.ResolutionBanner)
	require.Error(t, err)
	assert.Equal(t, 0, f.ledger.chargeCalls)
	assert.Equal(t, 0, f.images.calls)
}

func TestGenerateVideo_Success(t *testing.T) {
	f := newGenerationFixture(10)
	campaignID := primitive.NewObjectID()

	video, err := f.svc.GenerateVideo(context.Background(), campaignID, "show the espresso machine",
		contentmodels.StyleVibrant, contentmodels.PlatformTiktok)
	require.NoError(t, err)

	assert.Equal(t, creditsvc.CostVideo, video.CreditsUsed)
	assert.True(t, strings.HasPrefix(video.VideoURL, "data:video/mp4;base64,"))
	assert.Equal(t, 720, f.image.lastWidth, "ảnh nguồn video phải fetch ở 720x720")
	assert.Equal(t, 720, f.image.lastHeight)
	assert.Equal(t, 1, f.composer.calls)
	assert.Equal(t, int64(0), f.ledger.balance)
}

func TestGenerateVideo_ComposeError_NoCharge(t *testing.T) {
	f := newGenerationFixture(20)
	f.composer.err = errors.New("ffmpeg exited with status 1")

	_, err := f.svc.GenerateVideo(context.Background(), primitive.NewObjectID(), "prompt",
		contentmodels.StyleMinimalist, contentmodels.PlatformLinkedin)
	require.Error(t, err)
	assert.Equal(t, 1, f.image.calls, "ảnh nguồn đã fetch trước khi compose lỗi")
	assert.Equal(t, 0, f.ledger.chargeCalls, "compose lỗi thì không được trừ credit")
	assert.Equal(t, 0, f.videos.calls)
}

func TestGenerateVideo_InsertFailure_RefundsFull(t *testing.T) {
	f := newGenerationFixture(10)
	f.videos.err = errors.New("duplicate key")

	_, err := f.svc.GenerateVideo(context.Background(), primitive.NewObjectID(), "prompt",
		contentmodels.StyleLuxury, contentmodels.PlatformInstagram)
	require.Error(t, err)
	assert.Equal(t, 1, f.ledger.refundCalls)
	assert.Equal(t, creditsvc.CostVideo, f.ledger.lastRefund)
	assert.Equal(t, int64(10), f.ledger.balance)
}

// Trừ credit có điều kiện không bao giờ đẩy số dư xuống âm, kể cả khi nhiều
// request cùng campaign chạy đua: với 12 credit và chi phí 5, tối đa 2 lượt
// caption thành công.
func TestCharge_ConcurrentNeverNegative(t *testing.T) {
	ledger := &fakeLedger{balance: 12}
	campaignID := primitive.NewObjectID()

	var wg sync.WaitGroup
	successes := make(chan struct{}, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := ledger.Charge(context.Background(), campaignID, creditsvc.CostCaption, "caption", primitive.NewObjectID()); err == nil {
				successes <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(successes)

	count := 0
	for range successes {
		count++
	}
	assert.Equal(t, 2, count, "chỉ 2 lượt trừ 5 credit khớp với số dư 12")
	assert.Equal(t, int64(2), ledger.balance)
	assert.GreaterOrEqual(t, ledger.balance, int64(0), "số dư không bao giờ âm")
}
