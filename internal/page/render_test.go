package page

import (
	"context"
	"errors"
	"testing"

	"pet-care-info/internal/domain/care"
	"pet-care-info/internal/domain/dataset"
	"pet-care-info/internal/domain/facts"
	"pet-care-info/internal/ports/images"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResolver devuelve la imagen registrada para ref o un UnavailableError not_found.
type fakeResolver struct {
	images map[string]images.Image
	calls  []string
}

func (f *fakeResolver) Resolve(_ context.Context, ref string) (images.Image, error) {
	f.calls = append(f.calls, ref)
	img, ok := f.images[ref]
	if !ok {
		return images.Image{}, &images.UnavailableError{Ref: ref, Cause: images.CauseNotFound}
	}
	return img, nil
}

func pngImage(ref string) images.Image {
	return images.Image{Ref: ref, Format: "png", ContentType: "image/png", Width: 1, Height: 1, Data: []byte{0x89, 'P', 'N', 'G'}}
}

func careTable() care.Table {
	return care.Table{Ref: "care.xlsx", Records: []care.Record{
		{Species: "Dog", FoodName: "Kibble", Quantity: "2 cups", FeedingTime: "Morning", TimesPerDay: 2, TimesPerDayText: "2", FoodTypes: "Dry", ImageRef: "dog.png"},
		{Species: "Cat", FoodName: "Tuna", Quantity: "1/2 can", FeedingTime: "Evening", TimesPerDay: 0, TimesPerDayText: "Twice", FoodTypes: "Wet", ImageRef: "cat.png"},
		{Species: "Dog", FoodName: "Second", ImageRef: "dog2.png"},
	}}
}

func factsTable() facts.Table {
	return facts.Table{Ref: "facts.xlsx", Records: []facts.Record{
		{Species: "Dog", ImageRef: "dogfacts.png", Facts: []string{"Loyal", "Smart"}},
		{Species: "Fish", ImageRef: "fish.png", Facts: []string{}},
	}}
}

func baseState() State {
	return State{
		Care:  CareState{Ref: "care.xlsx", Table: careTable()},
		Facts: FactsState{Ref: "facts.xlsx", Table: factsTable()},
	}
}

func TestRender_NoSelection(t *testing.T) {
	res := &fakeResolver{}
	v := Render(context.Background(), baseState(), res)

	assert.Equal(t, Title, v.Title)
	assert.Equal(t, Header, v.Header)

	assert.Equal(t, StatusNoSelection, v.Care.Status)
	assert.Equal(t, msgSelectCare, v.Care.Info)
	assert.Equal(t, []Option{{Value: "Dog"}, {Value: "Cat"}}, v.Care.Options)
	assert.Empty(t, v.Care.Fields)

	assert.Equal(t, StatusNoSelection, v.Facts.Status)
	assert.Empty(t, res.calls, "no selection must not touch images")
}

func TestRender_CareFound(t *testing.T) {
	res := &fakeResolver{images: map[string]images.Image{"dog.png": pngImage("dog.png")}}
	st := baseState()
	st.CareSel = dataset.Select("Dog")

	v := Render(context.Background(), st, res)

	require.Equal(t, StatusFound, v.Care.Status)
	assert.Equal(t, "Information for Dogs", v.Care.Heading)
	assert.Equal(t, []Field{
		{Label: "Food Name", Value: "Kibble"},
		{Label: "Quantity", Value: "2 cups"},
		{Label: "Feeding Time", Value: "Morning"},
		{Label: "Times Per Day", Value: "2"},
		{Label: "Types of Food", Value: "Dry"},
	}, v.Care.Fields)
	assert.Contains(t, string(v.Care.Details), "<strong>Food Name:</strong> Kibble")
	assert.Contains(t, string(v.Care.Details), "<strong>Types of Food:</strong> Dry")

	require.NotNil(t, v.Care.Image)
	assert.Empty(t, v.Care.Image.Warning)
	assert.Equal(t, "Dog", v.Care.Image.Caption)
	assert.Contains(t, string(v.Care.Image.Src), "data:image/png;base64,")

	assert.True(t, v.Care.Options[0].Selected)
	assert.False(t, v.Care.Options[1].Selected)
	assert.Equal(t, []string{"dog.png"}, res.calls, "first matching row wins")
}

func TestRender_ImageFailureKeepsFields(t *testing.T) {
	st := baseState()
	st.CareSel = dataset.Select("Cat")

	v := Render(context.Background(), st, &fakeResolver{})

	require.Equal(t, StatusFound, v.Care.Status)
	require.NotNil(t, v.Care.Image)
	assert.Equal(t, msgImageMissing, v.Care.Image.Warning)
	assert.Empty(t, v.Care.Image.Src)
	assert.Len(t, v.Care.Fields, 5)
	assert.Contains(t, string(v.Care.Details), "1/2 can")
	assert.Contains(t, v.Care.Fields, Field{Label: "Times Per Day", Value: "Twice"}, "non-numeric cell shown as written")
}

func TestRender_SelectionIsCaseSensitive(t *testing.T) {
	st := baseState()
	st.CareSel = dataset.Select("dog")

	v := Render(context.Background(), st, &fakeResolver{})

	assert.Equal(t, StatusNotFound, v.Care.Status)
	assert.Nil(t, v.Care.Image)
	assert.Empty(t, v.Care.Fields)
}

func TestRender_FactsNumbered(t *testing.T) {
	st := baseState()
	st.FactSel = dataset.Select("Dog")

	v := Render(context.Background(), st, &fakeResolver{images: map[string]images.Image{"dogfacts.png": pngImage("dogfacts.png")}})

	require.Equal(t, StatusFound, v.Facts.Status)
	assert.Equal(t, "Fun facts about Dogs", v.Facts.Heading)
	assert.Equal(t, []NumberedFact{{N: 1, Text: "Loyal"}, {N: 2, Text: "Smart"}}, v.Facts.Facts)
	assert.Empty(t, v.Facts.Info)
	assert.Equal(t, StatusNoSelection, v.Care.Status, "panels are independent")
}

func TestRender_FactsEmpty(t *testing.T) {
	st := baseState()
	st.FactSel = dataset.Select("Fish")

	v := Render(context.Background(), st, &fakeResolver{})

	require.Equal(t, StatusFound, v.Facts.Status)
	assert.Empty(t, v.Facts.Facts)
	assert.Equal(t, "No facts available for Fish.", v.Facts.Info)
	require.NotNil(t, v.Facts.Image)
	assert.Equal(t, msgImageMissing, v.Facts.Image.Warning)
}

func TestRender_HaltedDatasets(t *testing.T) {
	st := baseState()
	st.Care = CareState{Ref: "missing.xlsx", Err: dataset.NotFound("missing.xlsx", errors.New("open: no such file"))}
	st.Facts = FactsState{Ref: "facts.csv", Err: &dataset.SchemaError{Ref: "facts.csv", Missing: []string{"Facts"}}}
	st.CareSel = dataset.Select("Dog")

	v := Render(context.Background(), st, &fakeResolver{})

	assert.Equal(t, StatusHalted, v.Care.Status)
	assert.Contains(t, v.Care.Error, "missing.xlsx")
	assert.Empty(t, v.Care.Options)
	assert.Equal(t, "Dog", v.Care.Selected)

	assert.Equal(t, StatusHalted, v.Facts.Status)
	assert.Contains(t, v.Facts.Error, "missing required columns: Facts")

	assert.Equal(t, Title, v.Title, "title still renders when datasets fail")
}

func TestFieldsHTML_EscapesMarkup(t *testing.T) {
	out := string(fieldsHTML([]Field{{Label: "Food Name", Value: "<b>Kibble</b> *special*"}}))

	assert.NotContains(t, out, "<b>")
	assert.NotContains(t, out, "<em>")
	assert.Contains(t, out, "<strong>Food Name:</strong>")
}

func TestSelectorFor_KeepsOtherPanel(t *testing.T) {
	v := View{
		Placeholder: SelectPlaceholder,
		PathInput:   true,
		Care:        CarePanel{Ref: "care.csv", Selected: "Dog"},
		Facts:       FactsPanel{Ref: "facts.csv", Selected: "Cat"},
	}

	c := selectorFor(ParamCare, v)
	assert.Equal(t, ParamCarePath, c.PathName)
	assert.Equal(t, "care.csv", c.Ref)
	assert.Equal(t, map[string]string{ParamFact: "Cat", ParamFactsPath: "facts.csv"}, c.Keep)

	v.PathInput = false
	f := selectorFor(ParamFact, v)
	assert.Equal(t, map[string]string{ParamCare: "Dog"}, f.Keep)
}
