package design

// DefaultTemplate returns the built-in starter app: a root container holding
// two cards, each with a text and a button. button2 carries style overrides.
func DefaultTemplate() AppDefinition {
	return AppDefinition{
		Components: []ComponentDefinition{
			{
				ID:    "button",
				Type:  ComponentButton,
				Label: "Button",
				DefaultStyles: Style{
					StyleBackgroundColor: "#3b82f6",
					StyleColor:           "#ffffff",
					StyleBorderRadius:    "0.25rem",
					StylePadding:         "0.5rem 1rem",
					StyleFontSize:        "0.875rem",
					StyleFontWeight:      "500",
					StyleBorder:          "none",
					StyleCursor:          "pointer",
				},
				Properties: Properties{
					"text":    StringValue("Click me"),
					"onClick": StringValue(`alert("Button clicked")`),
				},
			},
			{
				ID:    "text",
				Type:  ComponentText,
				Label: "Text",
				DefaultStyles: Style{
					StyleColor:    "#000000",
					StyleFontSize: "1rem",
					StyleMargin:   "0",
				},
				Properties: Properties{
					"content": StringValue("Text content"),
					"element": StringValue("p"),
				},
			},
			{
				ID:    "card",
				Type:  ComponentCard,
				Label: "Card",
				DefaultStyles: Style{
					StyleBackgroundColor: "#ffffff",
					StyleBorderRadius:    "0.5rem",
					StylePadding:         "1.5rem",
					StyleBoxShadow:       "0 4px 6px -1px rgba(0,0,0,0.1)",
					StyleWidth:           "100%",
				},
				Properties: Properties{
					"title": StringValue("Card Title"),
				},
			},
			{
				ID:    "container",
				Type:  ComponentContainer,
				Label: "Container",
				DefaultStyles: Style{
					StyleDisplay:       "flex",
					StyleFlexDirection: "column",
					StyleGap:           "1rem",
					StylePadding:       "1rem",
					StyleWidth:         "100%",
				},
				Properties: Properties{
					"title": StringValue(""),
				},
			},
		},
		Instances: []ComponentInstance{
			{
				ID:          "root",
				ComponentID: "container",
				Properties:  Properties{"title": StringValue("Root Container")},
				Children: []ComponentInstance{
					{
						ID:          "card1",
						ComponentID: "card",
						ParentID:    "root",
						Properties:  Properties{"title": StringValue("Welcome to App Builder")},
						Children: []ComponentInstance{
							{
								ID:          "text1",
								ComponentID: "text",
								ParentID:    "card1",
								Properties: Properties{
									"content": StringValue("This is a sample app that you can customize."),
									"element": StringValue("p"),
								},
							},
							{
								ID:          "button1",
								ComponentID: "button",
								ParentID:    "card1",
								Properties: Properties{
									"text":    StringValue("Click me"),
									"onClick": StringValue(`alert("Hello world!")`),
								},
							},
						},
					},
					{
						ID:          "card2",
						ComponentID: "card",
						ParentID:    "root",
						Properties:  Properties{"title": StringValue("Another Card")},
						Children: []ComponentInstance{
							{
								ID:          "text2",
								ComponentID: "text",
								ParentID:    "card2",
								Properties: Properties{
									"content": StringValue("You can edit both components and instances."),
									"element": StringValue("p"),
								},
							},
							{
								ID:          "button2",
								ComponentID: "button",
								ParentID:    "card2",
								InstanceStyles: Style{
									StyleBackgroundColor: "#10b981",
									StyleBorderRadius:    "9999px",
								},
								Properties: Properties{
									"text":    StringValue("Custom Button"),
									"onClick": StringValue(`alert("This is a custom button")`),
								},
							},
						},
					},
				},
			},
		},
	}
}

// DefaultDocument pairs the starter app with the default theme.
func DefaultDocument() Document {
	return NewDocument(DefaultTemplate(), DefaultTheme())
}
