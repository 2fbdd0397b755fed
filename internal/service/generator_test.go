package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"aiktp_sync/internal/domain"
	"aiktp_sync/internal/generation"
	"aiktp_sync/internal/service/mocks"
	"aiktp_sync/internal/settings"
	"aiktp_sync/testdata/utils"
)

const productURL = "https://shop.example/product/ceramic-mug/"

type GeneratorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	ctx  context.Context

	records     *mocks.MockRecordStore
	terms       *mocks.MockTermStore
	attachments *mocks.MockAttachmentStore
	prefs       *mocks.MockPreferences
	client      *mocks.MockContentGenerator
	links       *mocks.MockPermalinker
	txManager   *mocks.MockTransactionManager
	publisher   *mocks.MockPublisher

	admin *domain.Principal
	gen   *Generator
}

func (s *GeneratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()

	s.records = mocks.NewMockRecordStore(s.ctrl)
	s.terms = mocks.NewMockTermStore(s.ctrl)
	s.attachments = mocks.NewMockAttachmentStore(s.ctrl)
	s.prefs = mocks.NewMockPreferences(s.ctrl)
	s.client = mocks.NewMockContentGenerator(s.ctrl)
	s.links = mocks.NewMockPermalinker(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.admin = &domain.Principal{ID: 1, Login: "admin", Role: domain.RoleAdministrator}
	s.gen = s.newGenerator(Config{SEOPlugins: []string{SEORankMath}})
}

func (s *GeneratorTestSuite) newGenerator(cfg Config) *Generator {
	return NewGenerator(
		s.records,
		s.terms,
		s.attachments,
		s.prefs,
		s.client,
		s.links,
		s.txManager,
		s.publisher,
		zap.NewNop(),
		cfg,
	)
}

func (s *GeneratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) product() *domain.Record {
	return &domain.Record{
		ID:              42,
		Type:            domain.RecordTypeProduct,
		Title:           "Ceramic Mug",
		Slug:            "ceramic-mug",
		Body:            "<p>old body</p>",
		Excerpt:         "old excerpt",
		Status:          domain.StatusPublish,
		FeaturedMediaID: utils.Ptr(int64(10)),
		GalleryIDs:      []int64{10, 11},
		Price:           "12.00",
		SKU:             "MUG-1",
		StockQuantity:   utils.Ptr(5),
		Attributes:      map[string]string{"color": "white"},
	}
}

func (s *GeneratorTestSuite) expectInfo(rec *domain.Record, keyword string) {
	s.prefs.EXPECT().ContentPrefs(gomock.Any()).Return(settings.ContentPrefs{
		Length: "long",
		Tone:   "casual",
	}, nil)
	s.terms.EXPECT().ForRecord(gomock.Any(), rec.ID, domain.TaxonomyProductCategory).
		Return([]domain.Term{{ID: 7, Name: "Mugs"}, {ID: 8, Name: "Kitchen"}}, nil)
	s.terms.EXPECT().ForRecord(gomock.Any(), rec.ID, domain.TaxonomyProductTag).
		Return(nil, nil)
	s.records.EXPECT().GetMeta(gomock.Any(), rec.ID, domain.MetaRankMathKeyword).Return(keyword, nil)
}

func (s *GeneratorTestSuite) expectTx() {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func (s *GeneratorTestSuite) TestGenerate_Description() {
	rec := s.product()
	s.records.EXPECT().GetByID(gomock.Any(), int64(42)).Return(rec, nil)
	s.expectInfo(rec, "ceramic mug")

	s.client.EXPECT().Generate(gomock.Any(), generation.TaskProductDescription, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, info generation.RecordInfo) (string, error) {
			s.Equal("Ceramic Mug", info["name"])
			s.Equal("Mugs, Kitchen", info["categories"])
			s.Equal("", info["tags"])
			s.Equal("5", info["stock-quantity"])
			s.Equal(`{"color":"white"}`, info["attributes"])
			s.Equal("", info["dimensions"])
			s.Equal("more than 1.200 words", info["lengthTxt"])
			s.Equal("casual and cheerful", info["tone"])
			s.Equal("auto", info["targetLanguage"])
			s.Equal("ceramic mug", info["mainKeyword"])
			return "<p>This ceramic mug is sturdy.</p><p>Dishwasher safe.</p>", nil
		})

	s.links.EXPECT().Permalink(rec).Return(productURL).AnyTimes()
	s.attachments.EXPECT().GetByID(gomock.Any(), int64(11)).
		Return(&domain.Attachment{ID: 11, URL: "https://shop.example/uploads/mug-side.jpg"}, nil)
	s.attachments.EXPECT().SetAltText(gomock.Any(), int64(11), "ceramic mug").Return(nil)

	want := `<p>This <a href="` + productURL + `">ceramic mug</a> is sturdy.</p>` +
		`<figure class="wp-block-image size-full"><img src="https://shop.example/uploads/mug-side.jpg" alt="ceramic mug" /></figure>` +
		`<p>Dishwasher safe.</p>`

	s.expectTx()
	s.records.EXPECT().UpdateContent(gomock.Any(), int64(42), want, "old excerpt").Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e domain.Event) error {
			s.Equal(domain.EventRecordUpdated, e.Type)
			s.Equal(int64(42), e.RecordID)
			return nil
		})

	res, err := s.gen.Generate(s.ctx, s.admin, 42, domain.OperationDescription)

	s.Require().NoError(err)
	s.Equal(want, res.Content)
	s.Equal(domain.OperationDescription, res.Operation)
}

func (s *GeneratorTestSuite) TestGenerate_ShortDescriptionSkipsTransforms() {
	rec := s.product()
	s.records.EXPECT().GetByID(gomock.Any(), int64(42)).Return(rec, nil)
	s.expectInfo(rec, "ceramic mug")
	s.client.EXPECT().Generate(gomock.Any(), generation.TaskProductShortDescription, gomock.Any()).
		Return("A sturdy ceramic mug.", nil)
	s.links.EXPECT().Permalink(rec).Return(productURL)

	s.expectTx()
	s.records.EXPECT().UpdateContent(gomock.Any(), int64(42), "<p>old body</p>", "A sturdy ceramic mug.").Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.gen.Generate(s.ctx, s.admin, 42, domain.OperationShortDescription)

	s.Require().NoError(err)
	s.Equal("A sturdy ceramic mug.", res.Content)
}

func (s *GeneratorTestSuite) TestGenerate_StoresProductNameAsKeyword() {
	rec := s.product()
	rec.FeaturedMediaID = nil
	rec.GalleryIDs = nil
	s.records.EXPECT().GetByID(gomock.Any(), int64(42)).Return(rec, nil)
	s.expectInfo(rec, "")
	s.records.EXPECT().SetMeta(gomock.Any(), int64(42), domain.MetaRankMathKeyword, "Ceramic Mug").Return(nil)
	s.client.EXPECT().Generate(gomock.Any(), generation.TaskProductDescription, gomock.Any()).
		Return("<h2>Ceramic Mug</h2><p>Plain text.</p>", nil)
	s.links.EXPECT().Permalink(rec).Return(productURL).AnyTimes()

	s.expectTx()
	s.records.EXPECT().UpdateContent(gomock.Any(), int64(42), "<h2>Ceramic Mug</h2><p>Plain text.</p>", "old excerpt").Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.gen.Generate(s.ctx, s.admin, 42, domain.OperationDescription)
	s.Require().NoError(err)
}

func (s *GeneratorTestSuite) TestGenerate_EmptyContentIsNotSaved() {
	rec := s.product()
	s.records.EXPECT().GetByID(gomock.Any(), int64(42)).Return(rec, nil)
	s.expectInfo(rec, "mug")
	s.client.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil)

	res, err := s.gen.Generate(s.ctx, s.admin, 42, domain.OperationDescription)

	s.Require().NoError(err)
	s.Empty(res.Content)
}

func (s *GeneratorTestSuite) TestGenerate_NotEnoughCredits() {
	rec := s.product()
	s.records.EXPECT().GetByID(gomock.Any(), int64(42)).Return(rec, nil)
	s.expectInfo(rec, "mug")
	s.client.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", domain.NewAPIError("NOT_ENOUGH_CREDITS"))

	_, err := s.gen.Generate(s.ctx, s.admin, 42, domain.OperationDescription)

	var genErr *GenerateError
	s.Require().ErrorAs(err, &genErr)
	s.True(genErr.Credits)
	s.Equal(MsgNotEnoughCredits, genErr.Message)
	s.True(domain.IsInsufficientCredits(err))
}

func (s *GeneratorTestSuite) TestGenerate_APIErrorMessage() {
	rec := s.product()
	s.records.EXPECT().GetByID(gomock.Any(), int64(42)).Return(rec, nil)
	s.expectInfo(rec, "mug")
	s.client.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", domain.NewAPIError("quota exceeded for today"))

	_, err := s.gen.Generate(s.ctx, s.admin, 42, domain.OperationDescription)

	var genErr *GenerateError
	s.Require().ErrorAs(err, &genErr)
	s.False(genErr.Credits)
	s.Equal("quota exceeded for today", genErr.Message)
}

func (s *GeneratorTestSuite) TestGenerate_Unauthorized() {
	editor := &domain.Principal{ID: 5, Role: "editor", Capabilities: []domain.Capability{domain.CapEditPosts}}

	_, err := s.gen.Generate(s.ctx, editor, 42, domain.OperationDescription)

	var genErr *GenerateError
	s.Require().ErrorAs(err, &genErr)
	s.Equal(MsgUnauthorized, genErr.Message)
	s.ErrorIs(err, domain.ErrUnauthorized)
}

func (s *GeneratorTestSuite) TestGenerate_ProductNotFound() {
	s.records.EXPECT().GetByID(gomock.Any(), int64(7)).Return(nil, domain.ErrNotFound)

	_, err := s.gen.Generate(s.ctx, s.admin, 7, domain.OperationDescription)

	var genErr *GenerateError
	s.Require().ErrorAs(err, &genErr)
	s.Equal(MsgProductNotFound, genErr.Message)
}

func (s *GeneratorTestSuite) TestGenerate_PostIsNotAProduct() {
	s.records.EXPECT().GetByID(gomock.Any(), int64(3)).
		Return(&domain.Record{ID: 3, Type: domain.RecordTypePost, Title: "Hello"}, nil)

	_, err := s.gen.Generate(s.ctx, s.admin, 3, domain.OperationDescription)

	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *GeneratorTestSuite) TestGenerate_SaveFailure() {
	rec := s.product()
	s.records.EXPECT().GetByID(gomock.Any(), int64(42)).Return(rec, nil)
	s.expectInfo(rec, "mug")
	s.client.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("short", nil)
	s.links.EXPECT().Permalink(rec).Return(productURL)
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err := s.gen.Generate(s.ctx, s.admin, 42, domain.OperationShortDescription)

	s.Require().Error(err)
	s.Contains(err.Error(), "save generated content")
}

func (s *GeneratorTestSuite) TestMainKeyword_NoSEOPlugin() {
	gen := s.newGenerator(Config{})

	kw, err := gen.MainKeyword(s.ctx, s.product())

	s.Require().NoError(err)
	s.Equal("Ceramic Mug", kw)
}

func (s *GeneratorTestSuite) TestMainKeyword_Yoast() {
	gen := s.newGenerator(Config{SEOPlugins: []string{SEOYoast}})
	s.records.EXPECT().GetMeta(gomock.Any(), int64(42), domain.MetaYoastKeyword).Return("mug", nil)

	kw, err := gen.MainKeyword(s.ctx, s.product())

	s.Require().NoError(err)
	s.Equal("mug", kw)
}
