package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/noctale/noctale/internal/auth"
	"github.com/noctale/noctale/internal/entities/catalog"
	"github.com/noctale/noctale/internal/errors"
	v1 "github.com/noctale/noctale/internal/handlers/api/v1"
	"github.com/noctale/noctale/internal/orchestrators/gacha"
	gachamock "github.com/noctale/noctale/internal/orchestrators/gacha/mock"
	"github.com/noctale/noctale/internal/orchestrators/packs"
	packsmock "github.com/noctale/noctale/internal/orchestrators/packs/mock"
)

type fixedIDGen struct{ id string }

func (g fixedIDGen) Generate() string { return g.id }

type HandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	packsSvc *packsmock.MockService
	gachaSvc *gachamock.MockService
	router   *gin.Engine
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.ctrl = gomock.NewController(s.T())
	s.packsSvc = packsmock.NewMockService(s.ctrl)
	s.gachaSvc = gachamock.NewMockService(s.ctrl)

	handler, err := v1.NewHandler(&v1.Config{
		PacksService: s.packsSvc,
		GachaService: s.gachaSvc,
		IDGen:        fixedIDGen{id: "err_fixed"},
	})
	s.Require().NoError(err)

	s.router = gin.New()
	handler.Register(s.router)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decode(rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *HandlerTestSuite) TestPull() {
	s.gachaSvc.EXPECT().Pull(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, input *gacha.PullInput) (*gacha.PullOutput, error) {
			s.Equal("guild_123", input.GuildID)
			s.Equal("user_456", input.UserID)
			s.Require().NotNil(input.Guarantee)
			s.Equal(4, *input.Guarantee)
			return &gacha.PullOutput{
				Character: &catalog.Character{ID: "1", PackID: "anilist"},
				Media:     &catalog.Media{ID: "2", PackID: "anilist"},
				Rating:    4,
			}, nil
		})

	rec := s.do(http.MethodPost, "/v1/guilds/guild_123/pulls",
		`{"userId": "user_456", "guarantee": 4}`)

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal(float64(4), body["rating"])
}

func (s *HandlerTestSuite) TestPullExhausted() {
	s.gachaSvc.EXPECT().Pull(gomock.Any(), gomock.Any()).
		Return(nil, errors.ResourceExhausted("gacha pool is exhausted"))

	rec := s.do(http.MethodPost, "/v1/guilds/guild_123/pulls", `{}`)

	s.Equal(http.StatusTooManyRequests, rec.Code)
	s.Equal("RESOURCE_EXHAUSTED", s.decode(rec)["code"])
}

func (s *HandlerTestSuite) TestPullBadBody() {
	rec := s.do(http.MethodPost, "/v1/guilds/guild_123/pulls", `not json`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestPullInternalErrorGetsReference() {
	s.gachaSvc.EXPECT().Pull(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("redis down"))

	rec := s.do(http.MethodPost, "/v1/guilds/guild_123/pulls", `{}`)

	s.Equal(http.StatusInternalServerError, rec.Code)
	body := s.decode(rec)
	s.Equal("err_fixed", body["ref"])
	s.NotContains(body["error"], "redis")
}

func (s *HandlerTestSuite) TestListPacksBadType() {
	rec := s.do(http.MethodGet, "/v1/guilds/guild_123/packs?type=bogus", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestInstallPack() {
	s.packsSvc.EXPECT().Install(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, input *packs.InstallInput) (*packs.InstallOutput, error) {
			s.Equal("guild_123", input.GuildID)
			s.Equal("user_456", input.UserID)
			s.JSONEq(`{"id": "waifus"}`, string(input.Manifest))
			return &packs.InstallOutput{}, nil
		})

	rec := s.do(http.MethodPost, "/v1/guilds/guild_123/packs?userId=user_456",
		`{"id": "waifus"}`)
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *HandlerTestSuite) TestInstallInvalidManifest() {
	s.packsSvc.EXPECT().Install(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidArgument("manifest conflicts with pack other"))

	rec := s.do(http.MethodPost, "/v1/guilds/guild_123/packs", `{"id": "waifus"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.decode(rec)["error"], "conflicts")
}

func (s *HandlerTestSuite) TestRemovePackNotFound() {
	s.packsSvc.EXPECT().Remove(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFoundf("pack %s is not installed", "waifus"))

	rec := s.do(http.MethodDelete, "/v1/guilds/guild_123/packs/waifus", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestSearchMediaThreshold() {
	s.packsSvc.EXPECT().SearchMedia(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, input *packs.SearchInput) (*packs.SearchMediaOutput, error) {
			s.Equal("gurren", input.Search)
			s.Require().NotNil(input.Threshold)
			s.Equal(0, *input.Threshold)
			return &packs.SearchMediaOutput{}, nil
		})

	rec := s.do(http.MethodGet, "/v1/guilds/guild_123/media/search?q=gurren&threshold=0", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestSearchMediaBadThreshold() {
	rec := s.do(http.MethodGet, "/v1/guilds/guild_123/media/search?q=x&threshold=101", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestCharactersByIDs() {
	s.packsSvc.EXPECT().Characters(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, input *packs.CharactersInput) (*packs.CharactersOutput, error) {
			s.Equal([]string{"anilist:1", "waifus:a"}, input.IDs)
			return &packs.CharactersOutput{
				Characters: map[string]*catalog.Character{},
			}, nil
		})

	rec := s.do(http.MethodGet, "/v1/guilds/guild_123/characters?ids=anilist:1,waifus:a", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestMediaCharactersPaging() {
	s.packsSvc.EXPECT().MediaCharacters(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, input *packs.MediaCharactersInput) (*packs.MediaCharactersOutput, error) {
			s.Equal("waifus:gurren", input.ID)
			s.Equal(2, input.Index)
			return &packs.MediaCharactersOutput{Total: 4, Next: true}, nil
		})

	rec := s.do(http.MethodGet, "/v1/guilds/guild_123/media/waifus:gurren/characters?index=2", "")
	s.Equal(http.StatusOK, rec.Code)

	body := s.decode(rec)
	s.Equal(float64(4), body["total"])
	s.Equal(true, body["next"])
}

func (s *HandlerTestSuite) TestMediaCharactersBadIndex() {
	rec := s.do(http.MethodGet, "/v1/guilds/guild_123/media/waifus:gurren/characters?index=-1", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestAuthRequired() {
	tokenSvc, err := auth.NewTokenService(&auth.Config{Secret: "secret"})
	s.Require().NoError(err)

	handler, err := v1.NewHandler(&v1.Config{
		PacksService: s.packsSvc,
		GachaService: s.gachaSvc,
		TokenService: tokenSvc,
	})
	s.Require().NoError(err)

	router := gin.New()
	handler.Register(router)

	req := httptest.NewRequest(http.MethodGet, "/v1/guilds/guild_123/packs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	s.Equal(http.StatusUnauthorized, rec.Code)

	s.packsSvc.EXPECT().ListPacks(gomock.Any(), gomock.Any()).
		Return(&packs.ListPacksOutput{}, nil)

	token, err := tokenSvc.Sign("bot_1")
	s.Require().NoError(err)

	req = httptest.NewRequest(http.MethodGet, "/v1/guilds/guild_123/packs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	s.Equal(http.StatusOK, rec.Code)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
