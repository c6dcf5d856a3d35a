package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-dlx/internal/domain"
	"svw.info/sudoku-dlx/internal/generator"
	"svw.info/sudoku-dlx/internal/hint"
	"svw.info/sudoku-dlx/internal/infrastructure/storage"
	"svw.info/sudoku-dlx/internal/solver"
	"svw.info/sudoku-dlx/internal/usecase"
	"svw.info/sudoku-dlx/internal/validator"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := solver.NewDLXSolver()
	uc := usecase.NewService(
		s,
		generator.NewUniqueGenerator(s),
		validator.New(),
		hint.NewSingles(),
		storage.NewFS(t.TempDir()),
	)
	srv := httptest.NewServer(New(uc).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func TestSolveEndpoint(t *testing.T) {
	srv := testServer(t)
	resp := postJSON(t, srv.URL+"/api/solve", solveReq{Board: sample})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out solveResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			assert.NotZero(t, out.Board[r][c])
		}
	}
}

func TestSolveEndpointRejectsConflicts(t *testing.T) {
	srv := testServer(t)
	var grid [9][9]uint8
	grid[0][0], grid[0][1] = 5, 5
	resp := postJSON(t, srv.URL+"/api/solve", solveReq{Board: grid})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSolveEndpointUnsatisfiable(t *testing.T) {
	srv := testServer(t)
	var grid [9][9]uint8
	grid[0][1], grid[0][2], grid[0][3], grid[0][4] = 1, 2, 3, 4
	grid[1][0], grid[2][0] = 5, 6
	grid[3][0], grid[4][0], grid[5][0] = 7, 8, 9
	resp := postJSON(t, srv.URL+"/api/solve", solveReq{Board: grid})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestPuzzleRoundTrip(t *testing.T) {
	srv := testServer(t)

	p := domain.Puzzle{Board: domain.Board{Values: sample}, Difficulty: domain.Hard}
	resp := postJSON(t, srv.URL+"/api/puzzles", p)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var saved saveResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&saved))
	require.NotEmpty(t, saved.ID)

	got, err := http.Get(srv.URL + "/api/puzzles/" + saved.ID)
	require.NoError(t, err)
	defer got.Body.Close()
	require.Equal(t, http.StatusOK, got.StatusCode)
	var loaded domain.Puzzle
	require.NoError(t, json.NewDecoder(got.Body).Decode(&loaded))
	assert.Equal(t, sample, loaded.Board.Values)

	missing, err := http.Get(srv.URL + "/api/puzzles/does-not-exist")
	require.NoError(t, err)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestValidateEndpoint(t *testing.T) {
	srv := testServer(t)
	var grid [9][9]uint8
	grid[0][0], grid[0][8] = 7, 7
	resp := postJSON(t, srv.URL+"/api/validate", validateReq{Board: grid})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out validateResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.OK)
	assert.NotEmpty(t, out.Conflicts)
}
