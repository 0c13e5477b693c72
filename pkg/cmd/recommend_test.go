package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"coffeeQuizBot/pkg/recommend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *recommend.Registry {
	t.Helper()

	registry, err := recommend.NewRegistry(recommend.ProfileClassic, recommend.BuiltinProfiles()...)
	require.NoError(t, err)

	return registry
}

func milkOverrideAnswers() map[string]string {
	return map[string]string{
		recommend.KeySweetness:      recommend.TokenNo,
		recommend.KeyMilkAmount:     recommend.TokenYes,
		recommend.KeyCoffeeStrength: recommend.TokenYes,
		recommend.KeySpecialty:      recommend.TokenEthiopian,
		recommend.KeyTemperature:    recommend.TokenNo,
	}
}

func TestRunRecommend_Text(t *testing.T) {
	out := &bytes.Buffer{}

	err := runRecommend(out, testRegistry(t), recommendOptions{
		Answers: milkOverrideAnswers(),
		Format:  formatText,
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "ميكاتو ساخن")
	assert.Contains(t, out.String(), "Mikato (hot), profile classic, policy milk-preference, distance 6.00")
}

func TestRunRecommend_JSONWithProfile(t *testing.T) {
	out := &bytes.Buffer{}

	err := runRecommend(out, testRegistry(t), recommendOptions{
		Profile: recommend.ProfileClassicNearest,
		Answers: milkOverrideAnswers(),
		Format:  formatJSON,
	})
	require.NoError(t, err)

	var decoded struct {
		Prediction   string  `json:"prediction"`
		Confidence   float64 `json:"confidence"`
		Profile      string  `json:"profile"`
		Presentation struct {
			Label string `json:"label"`
			Image string `json:"image"`
		} `json:"presentation"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))

	assert.Equal(t, "v60 Ethiopian coffee", decoded.Prediction)
	assert.InDelta(t, 0.7, decoded.Confidence, 1e-9)
	assert.Equal(t, recommend.ProfileClassicNearest, decoded.Profile)
	assert.Equal(t, "قهوة v60 إثيوبي ساخن", decoded.Presentation.Label)
	assert.Equal(t, "images/hot/v60 Ethiopian coffee.png", decoded.Presentation.Image)
}

func TestRunRecommend_MissingAnswers(t *testing.T) {
	opts := recommendOptions{
		Answers: map[string]string{recommend.KeyMilkAmount: recommend.TokenYes},
		Format:  formatText,
	}

	err := runRecommend(&bytes.Buffer{}, testRegistry(t), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), recommend.KeySweetness)

	opts.Partial = true
	require.NoError(t, runRecommend(&bytes.Buffer{}, testRegistry(t), opts))
}

func TestRunRecommend_InvalidOptions(t *testing.T) {
	err := runRecommend(&bytes.Buffer{}, testRegistry(t), recommendOptions{Format: "xml"})
	assert.Error(t, err)

	err = runRecommend(&bytes.Buffer{}, testRegistry(t), recommendOptions{Format: formatText, Profile: "nope", Partial: true})
	assert.Error(t, err)
}

func TestRunRecommend_Snapshot(t *testing.T) {
	dir := t.TempDir()

	snapshotPath := filepath.Join(dir, "snapshot.json")
	raw, err := json.Marshal(map[string]interface{}{
		"profile": recommend.ProfileClassicNearest,
		"answers": milkOverrideAnswers(),
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(snapshotPath, raw, 0o600))

	out := &bytes.Buffer{}
	require.NoError(t, runRecommend(out, testRegistry(t), recommendOptions{SnapshotPath: snapshotPath, Format: formatText}))
	assert.Contains(t, out.String(), "profile classic-nearest")
	assert.Contains(t, out.String(), "v60 Ethiopian coffee (hot)")

	// explicit answers win over the snapshot
	out.Reset()
	require.NoError(t, runRecommend(out, testRegistry(t), recommendOptions{
		SnapshotPath: snapshotPath,
		Answers:      map[string]string{recommend.KeyTemperature: recommend.TokenYes},
		Format:       formatText,
	}))
	assert.Contains(t, out.String(), "v60 Ethiopian coffee (cold)")

	plainPath := filepath.Join(dir, "plain.json")
	raw, err = json.Marshal(milkOverrideAnswers())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(plainPath, raw, 0o600))

	snap, err := readSnapshot(plainPath)
	require.NoError(t, err)
	assert.Equal(t, recommend.Answers(milkOverrideAnswers()), snap.Answers)
	assert.Empty(t, snap.Profile)

	_, err = readSnapshot(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestPrintCatalogs(t *testing.T) {
	out := &bytes.Buffer{}

	require.NoError(t, printCatalogs(out, []string{"minimal"}))
	assert.Contains(t, out.String(), "minimal: 2 drinks")
	assert.Contains(t, out.String(), "مشروب شوكولاتة ساخن")

	assert.Error(t, printCatalogs(out, []string{"unknown"}))
}

func TestPrintProfiles(t *testing.T) {
	out := &bytes.Buffer{}

	printProfiles(out, testRegistry(t))
	assert.Contains(t, out.String(), "classic (default):")
	assert.Contains(t, out.String(), "policy: milk-preference, confidence scale: 10, shortlist: 5")
	assert.Contains(t, out.String(), "weights: sweetness=2, milk_amount=3, coffee_strength=2, specialty=2, temperature=2")
}
