package packs_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	anilistmock "github.com/noctale/noctale/internal/clients/anilist/mock"
	"github.com/noctale/noctale/internal/entities/catalog"
	"github.com/noctale/noctale/internal/entities/pack"
	"github.com/noctale/noctale/internal/errors"
	"github.com/noctale/noctale/internal/orchestrators/packs"
	"github.com/noctale/noctale/internal/repositories/packstore"
)

const (
	testGuildID = "guild_123"
	testUserID  = "user_456"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	miniRedis   *miniredis.Miniredis
	mockAniList *anilistmock.MockClient
	svc         packs.Service
	ctx         context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.ctrl = gomock.NewController(s.T())
	s.mockAniList = anilistmock.NewMockClient(s.ctrl)

	client := redis.NewClient(&redis.Options{
		Addr: s.miniRedis.Addr(),
	})

	svc, err := packs.NewOrchestrator(&packs.Config{
		PackRepo:       packstore.NewRedisRepository(client),
		AniListClient:  s.mockAniList,
		CommunityPacks: true,
	})
	s.Require().NoError(err)
	s.svc = svc

	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.miniRedis.Close()
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) install(manifest string) *packs.InstallOutput {
	out, err := s.svc.Install(s.ctx, &packs.InstallInput{
		GuildID:  testGuildID,
		UserID:   testUserID,
		Manifest: json.RawMessage(manifest),
	})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) TestListPacks() {
	s.install(`{"id": "community-pack", "title": "Community Pack"}`)

	s.Run("default listing is vtubers plus community", func() {
		out, err := s.svc.ListPacks(s.ctx, &packs.ListPacksInput{GuildID: testGuildID})
		s.Require().NoError(err)
		s.Require().Len(out.Packs, 2)
		s.Equal("vtubers", out.Packs[0].Manifest.ID)
		s.Equal("community-pack", out.Packs[1].Manifest.ID)
		s.Equal(testUserID, out.Packs[1].InstalledBy)
	})

	s.Run("builtin filter", func() {
		builtinType := pack.TypeBuiltin
		out, err := s.svc.ListPacks(s.ctx, &packs.ListPacksInput{GuildID: testGuildID, Type: &builtinType})
		s.Require().NoError(err)
		s.Require().Len(out.Packs, 2)
		s.Equal("anilist", out.Packs[0].Manifest.ID)
		s.Equal("vtubers", out.Packs[1].Manifest.ID)
	})

	s.Run("community filter", func() {
		communityType := pack.TypeCommunity
		out, err := s.svc.ListPacks(s.ctx, &packs.ListPacksInput{GuildID: testGuildID, Type: &communityType})
		s.Require().NoError(err)
		s.Require().Len(out.Packs, 1)
		s.Equal("community-pack", out.Packs[0].Manifest.ID)
	})
}

func (s *OrchestratorTestSuite) TestInstallConflictIsSymmetric() {
	s.install(`{"id": "alpha"}`)
	s.install(`{"id": "beta", "conflicts": ["gamma"]}`)

	s.Run("candidate conflicts with installed", func() {
		_, err := s.svc.Install(s.ctx, &packs.InstallInput{
			GuildID:  testGuildID,
			UserID:   testUserID,
			Manifest: json.RawMessage(`{"id": "rival", "conflicts": ["alpha"]}`),
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "alpha")
	})

	s.Run("installed conflicts with candidate", func() {
		_, err := s.svc.Install(s.ctx, &packs.InstallInput{
			GuildID:  testGuildID,
			UserID:   testUserID,
			Manifest: json.RawMessage(`{"id": "gamma"}`),
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "gamma")
	})
}

func (s *OrchestratorTestSuite) TestInstallMissingDependency() {
	_, err := s.svc.Install(s.ctx, &packs.InstallInput{
		GuildID:  testGuildID,
		UserID:   testUserID,
		Manifest: json.RawMessage(`{"id": "extension", "depends": ["base-one", "base-two"]}`),
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	// every missing dependency is reported
	s.Contains(err.Error(), "base-one")
	s.Contains(err.Error(), "base-two")
}

func (s *OrchestratorTestSuite) TestInstallReservedID() {
	_, err := s.svc.Install(s.ctx, &packs.InstallInput{
		GuildID:  testGuildID,
		UserID:   testUserID,
		Manifest: json.RawMessage(`{"id": "vtubers"}`),
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRemove() {
	s.install(`{"id": "doomed"}`)

	out, err := s.svc.Remove(s.ctx, &packs.RemoveInput{GuildID: testGuildID, ManifestID: "doomed"})
	s.Require().NoError(err)
	s.Equal("doomed", out.Pack.Manifest.ID)

	_, err = s.svc.Remove(s.ctx, &packs.RemoveInput{GuildID: testGuildID, ManifestID: "doomed"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestIsDisabled() {
	s.install(`{"id": "blocker", "media": {"conflicts": ["anilist:99"]}}`)

	out, err := s.svc.IsDisabled(s.ctx, &packs.IsDisabledInput{GuildID: testGuildID, ID: "anilist:99"})
	s.Require().NoError(err)
	s.True(out.Disabled)

	out, err = s.svc.IsDisabled(s.ctx, &packs.IsDisabledInput{GuildID: testGuildID, ID: "anilist:100"})
	s.Require().NoError(err)
	s.False(out.Disabled)
}

func (s *OrchestratorTestSuite) TestCharactersOmitsDisabled() {
	s.install(`{"id": "blocker", "characters": {"conflicts": ["vtubers:gawr-gura"]}}`)

	out, err := s.svc.Characters(s.ctx, &packs.CharactersInput{
		GuildID: testGuildID,
		IDs:     []string{"vtubers:gawr-gura", "vtubers:usada-pekora"},
	})
	s.Require().NoError(err)

	s.NotContains(out.Characters, "vtubers:gawr-gura")
	s.Contains(out.Characters, "vtubers:usada-pekora")
}

func (s *OrchestratorTestSuite) TestMediaMixedSources() {
	popularity := 250000
	s.mockAniList.EXPECT().
		MediaByIDs(gomock.Any(), []int{42}).
		Return([]*catalog.Media{{
			ID:         "42",
			PackID:     catalog.SourceAniList,
			Title:      catalog.Alias{English: "Remote Show"},
			Popularity: &popularity,
		}}, nil)

	out, err := s.svc.Media(s.ctx, &packs.MediaInput{
		GuildID: testGuildID,
		IDs:     []string{"anilist:42", "vtubers:hololive", "Not A Valid Id", "anilist:42"},
	})
	s.Require().NoError(err)

	// malformed ids dropped, duplicates collapsed
	s.Len(out.Media, 2)
	s.Equal("Remote Show", out.Media["anilist:42"].Title.English)
	s.Equal("vtubers", out.Media["vtubers:hololive"].PackID)
}

func (s *OrchestratorTestSuite) TestAggregateMediaIdempotent() {
	media := &catalog.Media{
		ID:     "1",
		PackID: catalog.SourceAniList,
		Title:  catalog.Alias{English: "Show"},
		Characters: catalog.NewEdges[catalog.CharacterRef]([]catalog.CharacterEdge{
			{Role: catalog.RoleMain, Node: &catalog.Character{ID: "7", PackID: catalog.SourceAniList}},
		}),
	}

	once, err := s.svc.AggregateMedia(s.ctx, &packs.AggregateMediaInput{GuildID: testGuildID, Media: media})
	s.Require().NoError(err)

	twice, err := s.svc.AggregateMedia(s.ctx, &packs.AggregateMediaInput{GuildID: testGuildID, Media: once.Media})
	s.Require().NoError(err)

	s.Equal(once.Media, twice.Media)
	s.Require().Len(twice.Media.Characters.Edges(), 1)
	s.Equal("7", twice.Media.Characters.Edges()[0].Node.ID)
}

func (s *OrchestratorTestSuite) TestAggregateStopsAtOneHop() {
	s.install(`{
		"id": "linked",
		"media": {"new": [
			{"id": "first", "title": {"english": "First"}, "relations": [{"relation": "SEQUEL", "mediaId": "second"}]},
			{"id": "second", "title": {"english": "Second"}, "relations": [{"relation": "SEQUEL", "mediaId": "third"}]},
			{"id": "third", "title": {"english": "Third"}}
		]}
	}`)

	out, err := s.svc.Media(s.ctx, &packs.MediaInput{GuildID: testGuildID, IDs: []string{"linked:first"}})
	s.Require().NoError(err)
	first := out.Media["linked:first"]
	s.Require().NotNil(first)

	aggregated, err := s.svc.AggregateMedia(s.ctx, &packs.AggregateMediaInput{GuildID: testGuildID, Media: first})
	s.Require().NoError(err)

	edges := aggregated.Media.Relations.Edges()
	s.Require().Len(edges, 1)
	s.Equal("second", edges[0].Node.ID)

	// the nested node's own relations stay unexpanded
	s.False(edges[0].Node.Relations.Aggregated())
	s.Require().Len(edges[0].Node.Relations.Refs(), 1)
	s.Equal("third", edges[0].Node.Relations.Refs()[0].MediaID)
}

func (s *OrchestratorTestSuite) TestAggregatePreservesDuplicateTargets() {
	s.install(`{
		"id": "dup",
		"media": {"new": [
			{"id": "root", "title": {"english": "Root"}, "relations": [
				{"relation": "PREQUEL", "mediaId": "other"},
				{"relation": "SPIN_OFF", "mediaId": "other"}
			]},
			{"id": "other", "title": {"english": "Other"}}
		]}
	}`)

	out, err := s.svc.Media(s.ctx, &packs.MediaInput{GuildID: testGuildID, IDs: []string{"dup:root"}})
	s.Require().NoError(err)

	aggregated, err := s.svc.AggregateMedia(s.ctx, &packs.AggregateMediaInput{
		GuildID: testGuildID,
		Media:   out.Media["dup:root"],
	})
	s.Require().NoError(err)

	edges := aggregated.Media.Relations.Edges()
	s.Require().Len(edges, 2)
	s.Equal(catalog.RelationPrequel, edges[0].Relation)
	s.Equal(catalog.RelationSpinOff, edges[1].Relation)
	s.Equal("other", edges[0].Node.ID)
	s.Equal("other", edges[1].Node.ID)
}

func (s *OrchestratorTestSuite) TestSearchManyOrdersBySimilarity() {
	s.install(`{
		"id": "titles",
		"media": {"new": [
			{"id": "m-ab", "title": {"english": "ab"}},
			{"id": "m-acc", "title": {"english": "acc"}},
			{"id": "m-aa", "title": {"english": "aa"}}
		]}
	}`)

	s.mockAniList.EXPECT().SearchMedia(gomock.Any(), "aa").Return(nil, nil)

	zero := 0
	out, err := s.svc.SearchMedia(s.ctx, &packs.SearchInput{
		GuildID:   testGuildID,
		Search:    "aa",
		Threshold: &zero,
	})
	s.Require().NoError(err)

	// with no cutoff all three come back, best match first
	var got []string
	for _, m := range out.Results {
		if m.PackID == "titles" {
			got = append(got, m.ID)
		}
	}
	s.Equal([]string{"m-aa", "m-ab", "m-acc"}, got)
}

func (s *OrchestratorTestSuite) TestSearchManyBreaksTiesByPopularity() {
	s.install(`{
		"id": "ties",
		"characters": {"new": [
			{"id": "c-low", "name": {"english": "samename"}, "popularity": 1},
			{"id": "c-high", "name": {"english": "samename"}, "popularity": 3},
			{"id": "c-mid", "name": {"english": "samename"}, "popularity": 2}
		]}
	}`)

	s.mockAniList.EXPECT().SearchCharacters(gomock.Any(), "samename").Return(nil, nil)

	out, err := s.svc.SearchCharacters(s.ctx, &packs.SearchInput{
		GuildID: testGuildID,
		Search:  "samename",
	})
	s.Require().NoError(err)

	var got []string
	for _, c := range out.Results {
		got = append(got, c.ID)
	}
	s.Equal([]string{"c-high", "c-mid", "c-low"}, got)
}

func (s *OrchestratorTestSuite) TestSearchManyEmptyAliasShortCircuit() {
	s.install(`{
		"id": "nameless",
		"media": {"new": [{"id": "blank", "title": {}}]}
	}`)

	s.mockAniList.EXPECT().SearchMedia(gomock.Any(), "anything").Return(nil, nil)

	out, err := s.svc.SearchMedia(s.ctx, &packs.SearchInput{GuildID: testGuildID, Search: "anything"})
	s.Require().NoError(err)
	s.Empty(out.Results)
}

func (s *OrchestratorTestSuite) TestSearchOne() {
	s.mockAniList.EXPECT().SearchMedia(gomock.Any(), "hololive").Return(nil, nil)

	out, err := s.svc.SearchOneMedia(s.ctx, &packs.SearchInput{GuildID: testGuildID, Search: "hololive"})
	s.Require().NoError(err)
	s.Require().NotNil(out.Media)
	s.Equal("hololive", out.Media.ID)
	s.Equal("vtubers", out.Media.PackID)
}

func (s *OrchestratorTestSuite) TestMediaCharactersPaging() {
	out, err := s.svc.MediaCharacters(s.ctx, &packs.MediaCharactersInput{
		GuildID: testGuildID,
		ID:      "vtubers:hololive",
		Index:   0,
	})
	s.Require().NoError(err)

	s.Equal(4, out.Total)
	s.True(out.Next)
	s.Require().NotNil(out.Character)
	s.Equal("gawr-gura", out.Character.ID)
	s.Equal(catalog.RoleMain, out.Role)

	last, err := s.svc.MediaCharacters(s.ctx, &packs.MediaCharactersInput{
		GuildID: testGuildID,
		ID:      "vtubers:hololive",
		Index:   3,
	})
	s.Require().NoError(err)
	s.False(last.Next)
	s.Require().NotNil(last.Character)
	s.Equal("inugami-korone", last.Character.ID)
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
