package physics

import (
	"testing"

	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/vmath"
)

func TestStepReportsFirstContactOnce(t *testing.T) {
	o := NewOracle()
	o.Set(1, Body{Kind: core.KindScan, Pos: vmath.V(0, 0), Radius: 20, Active: true})
	o.Set(2, Body{Kind: core.KindEnemy, Pos: vmath.V(25, 0), Radius: 10, Active: true})

	o.Step()
	cs := o.Contacts()
	if len(cs) != 1 {
		t.Fatalf("contacts = %d, want 1", len(cs))
	}
	c := cs[0]
	if c.KindA != core.KindEnemy || c.KindB != core.KindScan {
		t.Errorf("kinds not ordered: %v %v", c.KindA, c.KindB)
	}
	if c.A != 2 || c.B != 1 {
		t.Errorf("entities not swapped with kinds: A=%d B=%d", c.A, c.B)
	}
	if !c.Started {
		t.Error("first overlap not Started")
	}

	o.Step()
	if cs := o.Contacts(); len(cs) != 1 || cs[0].Started {
		t.Error("sustained overlap reported as Started")
	}

	// Separate then touch again
	o.Set(2, Body{Kind: core.KindEnemy, Pos: vmath.V(100, 0), Radius: 10, Active: true})
	o.Step()
	if len(o.Contacts()) != 0 {
		t.Error("separated bodies still in contact")
	}
	o.Set(2, Body{Kind: core.KindEnemy, Pos: vmath.V(25, 0), Radius: 10, Active: true})
	o.Step()
	if cs := o.Contacts(); len(cs) != 1 || !cs[0].Started {
		t.Error("re-contact not Started")
	}
}

func TestInactiveAndSameKindIgnored(t *testing.T) {
	o := NewOracle()
	o.Set(1, Body{Kind: core.KindEnemy, Pos: vmath.V(0, 0), Radius: 10, Active: true})
	o.Set(2, Body{Kind: core.KindEnemy, Pos: vmath.V(1, 0), Radius: 10, Active: true})
	o.Set(3, Body{Kind: core.KindShield, Pos: vmath.V(0, 0), Radius: 60, Active: false})

	o.Step()
	if len(o.Contacts()) != 0 {
		t.Errorf("contacts = %v, want none", o.Contacts())
	}
	if o.Overlaps(1, 3) {
		t.Error("inactive shield reported overlap")
	}
	if !o.Overlaps(1, 2) {
		t.Error("Overlaps ignores kind, should report enemy pair")
	}
}

func TestRemoveAndClear(t *testing.T) {
	o := NewOracle()
	o.Set(1, Body{Kind: core.KindPlanet, Radius: 24, Active: true})
	o.Set(2, Body{Kind: core.KindEnemy, Radius: 10, Active: true})
	o.Step()

	o.Remove(2)
	o.Step()
	if len(o.Contacts()) != 0 {
		t.Error("removed body still in contact")
	}
	if _, ok := o.Get(2); ok {
		t.Error("removed body still registered")
	}

	o.Clear()
	if o.Len() != 0 {
		t.Errorf("Len after Clear = %d", o.Len())
	}
}
