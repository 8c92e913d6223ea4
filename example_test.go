package sigx

import "fmt"

func ExampleBindable() {
	values, _ := NewBindable("init", ManualCleanup())

	src := NewStream[string]()
	if err := values.BindTo(FromStream(src)); err != nil {
		panic(err)
	}

	fmt.Println(values.Read())

	src.Emit("a")
	src.Emit("b")
	fmt.Println(values.Read())

	// Output:
	// init
	// b
}

func ExampleEventSignal() {
	scope := NewScope()
	defer scope.Dispose()

	button := NewDispatcher()

	clicks, err := NewEventSignal[int](Names("click"),
		OnTarget(button),
		EventScope(scope),
		Select(func(e Event) int { return e.Detail.(int) }),
		InitialValue(0),
		Activate(Active()),
	)
	if err != nil {
		panic(err)
	}

	button.Dispatch(Event{Type: "click", Detail: 1})
	button.Dispatch(Event{Type: "click", Detail: 2})
	fmt.Println(clicks.Read())

	clicks.Deactivate()
	button.Dispatch(Event{Type: "click", Detail: 3})
	fmt.Println(clicks.Read())

	// Output:
	// 2
	// 2
}

func ExampleCellStream() {
	scope := NewScope()
	defer scope.Dispose()

	count := NewCell(1)

	stream, err := CellStream(count, BridgeScope(scope))
	if err != nil {
		panic(err)
	}

	stream.Subscribe(Observer[int]{Next: func(v int) {
		fmt.Println("got", v)
	}})

	count.Write(2)

	// Output:
	// got 1
	// got 2
}
