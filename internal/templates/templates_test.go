package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rishvinreddy/smarty-budget/internal/models"
)

func TestLoad_BuiltinsWhenNoFile(t *testing.T) {
	available := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Len(t, available, 3)
	names := []string{available[0].Name, available[1].Name, available[2].Name}
	assert.Equal(t, []string{"fresh-start", "fifty-thirty-twenty", "family"}, names)
}

func TestLoad_FileAddsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.yaml")
	content := `templates:
  - name: fresh-start
    description: Overridden.
    income:
      - name: Side hustle
        planned: 1500
  - name: student
    description: A lean student budget.
    income:
      - name: Stipend
        planned: 1200
    expenses:
      - name: Groceries
        planned: 250
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	available := Load(path)
	require.Len(t, available, 4)

	overridden, err := Find(available, "fresh-start")
	require.NoError(t, err)
	assert.Equal(t, "Overridden.", overridden.Description)
	require.Len(t, overridden.Income, 1)
	assert.Equal(t, "Side hustle", overridden.Income[0].Name)

	added, err := Find(available, "student")
	require.NoError(t, err)
	assert.Equal(t, "A lean student budget.", added.Description)
}

func TestLoad_MalformedFileFallsBackToBuiltins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte("templates: [unclosed"), 0600))

	assert.Len(t, Load(path), 3)
}

func TestLoad_NamelessEntriesSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	content := `templates:
  - description: No name here.
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	assert.Len(t, Load(path), 3)
}

func TestFind(t *testing.T) {
	available := builtin()

	tmpl, err := Find(available, "Fresh-Start")
	require.NoError(t, err)
	assert.Equal(t, "fresh-start", tmpl.Name)

	_, err = Find(available, "does-not-exist")
	assert.Error(t, err)
}

func TestTemplate_Plan(t *testing.T) {
	tmpl := Template{
		Name:     "test",
		Income:   []Line{{Name: "Salary", Planned: 4000}},
		Expenses: []Line{{Name: " ", Planned: 100}, {Name: "Negative", Planned: -5}, {Name: "Groceries", Planned: 450}},
	}

	plan := tmpl.Plan()
	require.Len(t, plan, 5)

	assert.Len(t, plan[models.Income], 1)
	assert.Equal(t, "4000", plan[models.Income][0].Planned.String())

	// Blank names and negative amounts are dropped
	require.Len(t, plan[models.Expenses], 1)
	assert.Equal(t, "Groceries", plan[models.Expenses][0].Name)

	assert.Empty(t, plan[models.Debt])
}

func TestBuiltinsApplyCleanly(t *testing.T) {
	for _, tmpl := range builtin() {
		next := models.ApplyPlan(models.Ledger{}, tmpl.Plan())
		total := 0
		for _, ct := range models.CategoryTypes {
			total += len(next.Bucket(ct))
		}
		assert.Greater(t, total, 0, "template %s", tmpl.Name)
	}
}
