package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel"

	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/handlers/statblock/v1alpha1"
	"github.com/KirkDiggler/statblock-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/statblock-importer/internal/orchestrators/power"
	"github.com/KirkDiggler/statblock-importer/internal/testutils"
)

type CommandTestSuite struct {
	suite.Suite
	dir string
	out *bytes.Buffer
}

func (s *CommandTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.out = &bytes.Buffer{}

	logLevel = ""
	conditionsFile = ""
	importWorkers = 0
	importStore = false
	maliceCharacteristic = "might"
	listLimit = 0

	s.T().Setenv("STATBLOCK_REDIS_ADDR", "")
	s.Require().NoError(os.Unsetenv("STATBLOCK_REDIS_ADDR"))
	s.T().Setenv("STATBLOCK_SQLITE_PATH", "")
	s.T().Setenv("STATBLOCK_LOG_LEVEL", "error")

	rootCmd.SetOut(s.out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(""))
}

func (s *CommandTestSuite) writeFile(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *CommandTestSuite) run(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

func (s *CommandTestSuite) TestImportPrintsMonsters() {
	path := s.writeFile("stinker.json", testutils.GoblinStinkerJSON)

	err := s.run("import", path)
	s.Require().NoError(err)

	var reports []importReport
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &reports))
	s.Require().Len(reports, 1)
	s.Equal("stinker.json", reports[0].File)
	s.Empty(reports[0].Error)

	monster, ok := reports[0].Monster.(map[string]any)
	s.Require().True(ok)
	s.Equal("Goblin Stinker", monster["name"])
}

func (s *CommandTestSuite) TestImportReportsBadFiles() {
	good := s.writeFile("good.json", testutils.GoblinStinkerJSON)
	bad := s.writeFile("bad.json", "{not json")

	err := s.run("import", "--workers", "2", good, bad)
	s.Require().Error(err)
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))

	var reports []importReport
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &reports))
	s.Require().Len(reports, 2)
	s.Empty(reports[0].Error)
	s.NotEmpty(reports[1].Error)
}

func (s *CommandTestSuite) TestImportMissingFile() {
	err := s.run("import", filepath.Join(s.dir, "missing.json"))
	s.Error(err)
}

func (s *CommandTestSuite) TestMaliceReadsStandardInput() {
	rootCmd.SetIn(strings.NewReader(testutils.StrikeMaliceText))

	err := s.run("malice", "--characteristic", "agility")
	s.Require().NoError(err)

	var out struct {
		TypeKey string           `json:"type_key"`
		Items   []map[string]any `json:"items"`
	}
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &out))
	s.Equal("Goblin", out.TypeKey)
	s.Require().Len(out.Items, 1)
	s.Equal("Strike", out.Items[0]["name"])
}

func (s *CommandTestSuite) TestRollUsesHighestCharacteristic() {
	path := s.writeFile("stinker.json", testutils.GoblinStinkerJSON)

	err := s.run("roll", path, "toxic winds")
	s.Require().NoError(err)

	var out struct {
		Monster string `json:"monster"`
		Ability string `json:"ability"`
		Dice    []int  `json:"dice"`
		Total   int    `json:"total"`
		Tier    string `json:"tier"`
	}
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &out))
	s.Equal("Goblin Stinker", out.Monster)
	s.Equal("Toxic Winds", out.Ability)
	s.Require().Len(out.Dice, 2)
	// presence 2 is the stinker's highest characteristic
	s.Equal(out.Dice[0]+out.Dice[1]+2, out.Total)
	s.NotEmpty(out.Tier)
}

func (s *CommandTestSuite) TestRollUnknownAbility() {
	path := s.writeFile("stinker.json", testutils.GoblinStinkerJSON)

	err := s.run("roll", path, "Fireball")
	s.Require().Error(err)
	s.Equal(errors.CodeNotFound, errors.GetCode(err))
}

func (s *CommandTestSuite) TestRollSuggestsClosestAbility() {
	path := s.writeFile("stinker.json", testutils.GoblinStinkerJSON)

	err := s.run("roll", path, "toxic wind")
	s.Require().Error(err)
	s.Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Equal("Toxic Winds", errors.GetMeta(err)["suggestion"])
}

func (s *CommandTestSuite) TestInvalidLogLevelFlag() {
	err := s.run("malice", "--log-level", "loud", s.writeFile("m.txt", testutils.StrikeMaliceText))
	s.Require().Error(err)
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
}

func (s *CommandTestSuite) TestVersion() {
	s.Require().NoError(s.run("version"))
	s.Equal("statblock dev\n", s.out.String())
}

func (s *CommandTestSuite) TestAppStoresInRedis() {
	mr := miniredis.RunT(s.T())
	s.T().Setenv("STATBLOCK_REDIS_ADDR", mr.Addr())

	ctx := context.Background()
	a, err := setup(ctx)
	s.Require().NoError(err)
	defer a.close()

	imported, err := a.importer.ImportMonster(ctx, &importer.ImportMonsterInput{
		Data:   []byte(testutils.GoblinStinkerJSON),
		Source: "test",
	})
	s.Require().NoError(err)

	got, err := a.importer.GetMonster(ctx, &importer.GetMonsterInput{ID: imported.Monster.ID})
	s.Require().NoError(err)
	s.Equal("Goblin Stinker", got.Monster.Name)
	s.NotEmpty(mr.Keys())

	item := got.Monster.FindAbility("Toxic Winds")
	s.Require().NotNil(item)
	_, err = a.power.Roll(ctx, &power.RollInput{
		Ability:             item.Ability,
		CharacteristicScore: 2,
		MonsterID:           got.Monster.ID,
	})
	s.Require().NoError(err)

	history, err := a.power.History(ctx, &power.HistoryInput{MonsterID: got.Monster.ID})
	s.Require().NoError(err)
	s.Require().Len(history.Rolls, 1)
	s.Equal("toxic-winds", history.Rolls[0].Ability)
}

func (s *CommandTestSuite) TestAppStoresInSQLite() {
	s.T().Setenv("STATBLOCK_SQLITE_PATH", filepath.Join(s.dir, "monsters.db"))

	ctx := context.Background()
	a, err := setup(ctx)
	s.Require().NoError(err)
	defer a.close()

	imported, err := a.importer.ImportMonster(ctx, &importer.ImportMonsterInput{
		Data:   []byte(testutils.GoblinStinkerJSON),
		Source: "test",
	})
	s.Require().NoError(err)

	listed, err := a.importer.ListMonsters(ctx, &importer.ListMonstersInput{})
	s.Require().NoError(err)
	s.Require().Len(listed.Monsters, 1)
	s.Equal(imported.Monster.ID, listed.Monsters[0].ID)

	history, err := a.power.History(ctx, &power.HistoryInput{MonsterID: imported.Monster.ID})
	s.Require().NoError(err)
	s.Empty(history.Rolls)
}

func (s *CommandTestSuite) TestAppRedisUnreachable() {
	mr := miniredis.RunT(s.T())
	addr := mr.Addr()
	mr.Close()
	s.T().Setenv("STATBLOCK_REDIS_ADDR", addr)

	_, err := setup(context.Background())
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *CommandTestSuite) TestAppLoadsConditionsFile() {
	conditionsFile = s.writeFile("conditions.yaml", "conditions:\n  - soaked\n")

	a, err := setup(context.Background())
	s.Require().NoError(err)
	defer a.close()

	out, err := a.importer.ParseMaliceText(context.Background(), &importer.ParseMaliceTextInput{
		Text: "a Drench 2 malice\n1 the target is soaked (save ends)",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Items, 1)
	s.Require().Len(out.Items[0].Effects, 1)
}

// startServer serves the app's handler on a loopback port for client commands
func (s *CommandTestSuite) startServer() {
	a, err := setup(context.Background())
	s.Require().NoError(err)
	s.T().Cleanup(a.close)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ImporterService: a.importer,
		PowerService:    a.power,
	})
	s.Require().NoError(err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)

	srv := newGRPCServer()
	v1alpha1.RegisterImporterServiceServer(srv, handler)
	go func() {
		_ = srv.Serve(lis) // nolint:errcheck // stopped in cleanup
	}()
	s.T().Cleanup(srv.Stop)

	serverAddr = lis.Addr().String()
}

func (s *CommandTestSuite) TestClientRoundTrip() {
	s.startServer()
	path := s.writeFile("stinker.json", testutils.GoblinStinkerJSON)

	s.Require().NoError(s.run("client", "import", path))
	var imported map[string]any
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &imported))
	id, ok := imported["id"].(string)
	s.Require().True(ok)
	s.Equal("Goblin Stinker", imported["name"])

	s.out.Reset()
	s.Require().NoError(s.run("client", "list", "--limit", "5"))
	var listed struct {
		Monsters []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"monsters"`
	}
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &listed))
	s.Require().Len(listed.Monsters, 1)
	s.Equal(id, listed.Monsters[0].ID)

	s.out.Reset()
	s.Require().NoError(s.run("client", "roll", id, "Toxic Winds"))
	var rolled map[string]any
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &rolled))
	s.Equal("Toxic Winds", rolled["ability"])

	s.out.Reset()
	maliceFile := s.writeFile("strike.txt", testutils.StrikeMaliceText)
	s.Require().NoError(s.run("client", "malice", "--characteristic", "agility", maliceFile))
	var parsed struct {
		Items []struct {
			Ability struct {
				PowerRoll struct {
					Characteristics []string `json:"characteristics"`
				} `json:"power_roll"`
			} `json:"ability"`
		} `json:"items"`
	}
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &parsed))
	s.Require().Len(parsed.Items, 1)
	s.Equal([]string{"agility"}, parsed.Items[0].Ability.PowerRoll.Characteristics)

	s.out.Reset()
	s.Require().NoError(s.run("client", "delete", id))
	s.Contains(s.out.String(), id)

	err := s.run("client", "get", id)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *CommandTestSuite) TestAppServesMetrics() {
	s.T().Setenv("STATBLOCK_METRICS_PORT", "9464")
	origMP := otel.GetMeterProvider()
	s.T().Cleanup(func() { otel.SetMeterProvider(origMP) })

	a, err := setup(context.Background())
	s.Require().NoError(err)
	defer a.close()
	s.Require().NotNil(a.metrics)

	rec := httptest.NewRecorder()
	a.metrics.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	s.Equal(http.StatusOK, rec.Code)
}

func TestCommandTestSuite(t *testing.T) {
	suite.Run(t, new(CommandTestSuite))
}
