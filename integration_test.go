package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"sjsage522/lotteryscraper/config"
	"sjsage522/lotteryscraper/internal/export"
	"sjsage522/lotteryscraper/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// This is a test HTML that mimics the myhora.com lottery stats page
const testHTML = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>สถิติหวย</title>
</head>
<body>
    <table id="dl_lottery_stats_header">
        <tr><td><div class="rowx"><div class="colx">ไม่ใช่ตารางผล</div></div></td></tr>
    </table>
    <table id="dl_lottery_stats_list" cellspacing="0">
        <tr>
            <td>
                <div class="rowx">
                    <div class="colx">16</div><div class="colx">มกราคม</div><div class="colx">พ.ศ.</div>
                    <div class="colx">2567</div><div class="colx">รางวัลที่ 1</div><div class="colx">575855</div>
                    <div class="colx">55</div><div class="colx">855</div><div class="colx">69</div>
                    <div class="colx">071 290 050 540</div>
                </div>
            </td>
        </tr>
        <tr>
            <td>
                <div class="rowx">
                    <div class="colx">ประกาศ</div><div class="colx">งดออกรางวัล</div>
                </div>
            </td>
        </tr>
        <tr>
            <td>
                <div class="rowx">
                    <div class="colx">1</div><div class="colx">มกราคม</div><div class="colx">พ.ศ.</div>
                    <div class="colx">2567</div><div class="colx">รางวัลที่ 1</div><div class="colx">123456</div>
                    <div class="colx">78</div><div class="colx">901</div><div class="colx">23</div>
                    <div class="colx">111 222 333 444</div>
                </div>
            </td>
        </tr>
    </table>
</body>
</html>
`

func testConfig(t *testing.T, serverURL string) *config.Config {
	dir := t.TempDir()

	cfg := config.LoadConfig()
	cfg.Year = 67
	cfg.LotteryURL = serverURL + "/lottery/stats.aspx?mx=09&vx={year}"
	cfg.FetchTimeout = 5 * time.Second
	cfg.CSVPath = filepath.Join(dir, export.DefaultCSVPath)
	cfg.ParquetPath = config.ParquetPathFor(cfg.CSVPath)
	cfg.MemcacheAddr = ""
	cfg.RedisAddr = ""
	cfg.ErrorLogFile = filepath.Join(dir, "scrape_errors.log")
	require.NoError(t, cfg.Validate())
	return cfg
}

// TestIntegration tests the entire application flow
func TestIntegration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, config.DefaultUserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "67", r.URL.Query().Get("vx"))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, testHTML)
	}))
	defer server.Close()

	cfg := testConfig(t, server.URL)

	draws, err := run(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, draws, 2)

	assert.Equal(t, time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC), draws[0].Date)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), draws[1].Date)
	assert.Equal(t, []string{"111", "222"}, draws[1].FrontThree)
	assert.Equal(t, []string{"333", "444"}, draws[1].BottomThree)

	csvTable, err := export.ReadCSV(cfg.CSVPath)
	require.NoError(t, err)
	assert.Equal(t, export.FromRecords(draws), csvTable)

	parquetTable, err := export.ReadParquet(cfg.ParquetPath)
	require.NoError(t, err)
	assert.Equal(t, csvTable, parquetTable)
	assert.Equal(t, []string{"575855", "123456"}, parquetTable.Column("1st_prize"))
}

func TestIntegrationHTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	cfg := testConfig(t, server.URL)

	draws, err := run(context.Background(), cfg)
	assert.Error(t, err)
	assert.Nil(t, draws)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNetwork))
	assert.NoFileExists(t, cfg.CSVPath)
	assert.FileExists(t, cfg.ErrorLogFile)
}

func TestIntegrationUnreachableServices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, testHTML)
	}))
	defer server.Close()

	cfg := testConfig(t, server.URL)
	cfg.MemcacheAddr = "127.0.0.1:1"
	cfg.RedisAddr = "127.0.0.1:1"

	deps := initializeServices(context.Background(), cfg)
	assert.Nil(t, deps.Cache)
	assert.Nil(t, deps.Publisher)

	draws, err := run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Len(t, draws, 2)
}
