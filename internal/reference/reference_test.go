package reference

import "testing"

func TestDataComplete(t *testing.T) {
	if len(AllahNames) != 10 {
		t.Fatalf("expected 10 names, got %d", len(AllahNames))
	}
	for _, n := range AllahNames {
		if n.Name == "" || n.Meaning == "" {
			t.Fatalf("incomplete name entry: %+v", n)
		}
	}

	if len(Duas) != 3 {
		t.Fatalf("expected 3 dua categories, got %d", len(Duas))
	}
	for _, cat := range Duas {
		if cat.Category == "" || len(cat.Items) == 0 {
			t.Fatalf("empty dua category: %+v", cat)
		}
		for _, d := range cat.Items {
			if d.Arabic == "" || d.Translation == "" || d.Ref == "" {
				t.Fatalf("incomplete dua in %s", cat.Category)
			}
		}
	}

	if len(SunnahFoods) != 8 {
		t.Fatalf("expected 8 foods, got %d", len(SunnahFoods))
	}
}

func TestSalahStepsOrdered(t *testing.T) {
	if len(SalahSteps) != 8 {
		t.Fatalf("expected 8 steps, got %d", len(SalahSteps))
	}
	for i, s := range SalahSteps {
		if s.Step != i+1 {
			t.Fatalf("step at index %d numbered %d", i, s.Step)
		}
		if s.Title == "" || s.Desc == "" {
			t.Fatalf("incomplete step %d", s.Step)
		}
	}
}
