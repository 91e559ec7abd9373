package circuit

import "testing"

func TestInverter(t *testing.T) {
	s := NewState(3)
	gates := []Gate{{In: 1, Out: 2}}

	s.Set(1, false)
	s.Tick(gates)
	if !s.High(2) {
		t.Fatal("LOW input should drive the output HIGH")
	}

	s.Set(1, true)
	s.Tick(gates)
	if s.High(2) {
		t.Fatal("HIGH input should leave the output LOW")
	}
}

func TestInverterFollowsToggledInput(t *testing.T) {
	s := NewState(3)
	gates := []Gate{{In: 1, Out: 2}}
	for i := 0; i < 8; i++ {
		in := i%2 == 0
		s.Set(1, in)
		s.Tick(gates)
		if s.High(2) == in {
			t.Fatalf("tick %d: input %v produced output %v", i, in, s.High(2))
		}
	}
}

func TestUndrivenNetworkFallsLow(t *testing.T) {
	s := NewState(4)
	s.Fill(true)
	s.Tick([]Gate{{In: 1, Out: 2}})
	for id := NetworkID(0); id < 4; id++ {
		if s.High(id) {
			t.Fatalf("network %d should be LOW after the tick", id)
		}
	}
	if !s.Previous()[3] {
		t.Fatal("snapshot should hold the pre-tick value")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewState(3)
	s.Set(1, true)
	s.Tick(nil)
	s.Current()[1] = true
	s.Current()[2] = true
	if s.Previous()[2] {
		t.Fatal("writing the current buffer changed the snapshot")
	}
	s.Previous()[1] = false
	if !s.Current()[1] {
		t.Fatal("writing the snapshot changed the current buffer")
	}
}

func TestCascadeWithinOneTick(t *testing.T) {
	a := Gate{In: 1, Out: 2}
	b := Gate{In: 2, Out: 3}

	s := NewState(4)
	s.Tick([]Gate{a, b})
	if !s.High(2) {
		t.Fatal("first inverter should drive the middle network HIGH")
	}
	if s.High(3) {
		t.Fatal("second inverter should already see the HIGH middle network")
	}

	s = NewState(4)
	s.Tick([]Gate{b, a})
	if !s.High(3) {
		t.Fatal("second inverter evaluated first sees the stale LOW middle network")
	}
	s.Tick([]Gate{b, a})
	if s.High(3) {
		t.Fatal("the chain should settle on the following tick")
	}
}

func TestStateBounds(t *testing.T) {
	s := NewState(2)
	if s.High(NetworkID(MaxNetworks)) {
		t.Fatal("unknown id should read LOW")
	}
	if s.Set(NetworkID(5), true) {
		t.Fatal("Set accepted an unknown id")
	}
	if s.Set(NoNetwork, true) {
		t.Fatal("Set accepted NoNetwork")
	}
}
