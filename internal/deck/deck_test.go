package deck

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"coursecast/internal/script"
)

func readPart(t *testing.T, r *zip.Reader, name string) string {
	t.Helper()
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				t.Fatalf("open %s: %v", name, err)
			}
			defer rc.Close()
			data, err := io.ReadAll(rc)
			if err != nil {
				t.Fatalf("read %s: %v", name, err)
			}
			return string(data)
		}
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func hasPart(r *zip.Reader, name string) bool {
	for _, f := range r.File {
		if f.Name == name {
			return true
		}
	}
	return false
}

func buildReader(t *testing.T, slides []script.Slide, images map[int][]byte) *zip.Reader {
	t.Helper()
	data, err := Build(slides, images)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open package: %v", err)
	}
	return r
}

func TestBuildPackageStructure(t *testing.T) {
	slides := []script.Slide{
		{Title: "Photosynthesis", Bullets: []string{"Light reactions", "Calvin cycle"}},
		{Title: "Respiration", Bullets: []string{"Glycolysis"}},
	}
	r := buildReader(t, slides, nil)

	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
	} {
		if !hasPart(r, name) {
			t.Errorf("missing part %s", name)
		}
	}

	types := readPart(t, r, "[Content_Types].xml")
	if !strings.Contains(types, "/ppt/slides/slide2.xml") {
		t.Error("content types missing slide2 override")
	}
	pres := readPart(t, r, "ppt/presentation.xml")
	if strings.Count(pres, "<p:sldId ") != 2 {
		t.Errorf("presentation should list 2 slides: %s", pres)
	}
}

func TestBuildSlideContent(t *testing.T) {
	slides := []script.Slide{
		{Title: "Cells & Tissues", Bullets: []string{"Membrane <structure>", "Organelles"}},
	}
	r := buildReader(t, slides, nil)
	slide := readPart(t, r, "ppt/slides/slide1.xml")

	if !strings.Contains(slide, "Cells &amp; Tissues") {
		t.Error("title missing or unescaped")
	}
	if !strings.Contains(slide, "Membrane &lt;structure&gt;") {
		t.Error("bullet missing or unescaped")
	}
}

func TestBuildEmbedsImage(t *testing.T) {
	slides := []script.Slide{
		{Title: "Water Cycle", Bullets: []string{"Evaporation"}, Illustration: "rain over mountains"},
	}
	imageBytes := []byte{0x89, 'P', 'N', 'G'}
	r := buildReader(t, slides, map[int][]byte{0: imageBytes})

	if !hasPart(r, "ppt/media/image1.png") {
		t.Fatal("missing embedded image part")
	}
	slide := readPart(t, r, "ppt/slides/slide1.xml")
	if !strings.Contains(slide, `r:embed="rId2"`) {
		t.Error("slide does not reference embedded image")
	}
	if strings.Contains(slide, "Illustration idea:") {
		t.Error("caption fallback should be absent when image is embedded")
	}
	rels := readPart(t, r, "ppt/slides/_rels/slide1.xml.rels")
	if !strings.Contains(rels, "../media/image1.png") {
		t.Error("slide rels missing image relationship")
	}
}

func TestBuildCaptionFallbackWithoutImage(t *testing.T) {
	slides := []script.Slide{
		{Title: "Water Cycle", Bullets: []string{"Evaporation"}, Illustration: "rain over mountains"},
	}
	r := buildReader(t, slides, nil)
	slide := readPart(t, r, "ppt/slides/slide1.xml")

	if !strings.Contains(slide, "Illustration idea: rain over mountains") {
		t.Error("missing caption fallback")
	}
	if !strings.Contains(slide, `i="1"`) {
		t.Error("caption should be italic")
	}
}

func TestBuildRejectsEmptyDeck(t *testing.T) {
	if _, err := Build(nil, nil); err == nil {
		t.Fatal("expected error for empty deck")
	}
}
