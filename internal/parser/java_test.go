// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const controllerSource = `package com.example.api;

import io.micronaut.http.annotation.*;

/**
 * User management endpoints.
 */
@Controller("/users")
@Tag(name = "users")
public class UserController {

    /**
     * Looks up one user.
     * @param id the user identifier
     * @return the matching user
     */
    @Get("/{id}")
    public HttpResponse<User> show(Long id) {
        return null;
    }

    @Post(consumes = {MediaType.APPLICATION_JSON, MediaType.APPLICATION_XML})
    @Operation(operationId = "createUser", deprecated = true)
    public User create(@Body User user, @Header(name = "X-Tenant") String tenant) {
        return null;
    }
}
`

func TestParseControllerClass(t *testing.T) {
	p := NewJavaParser()
	defer p.Close()

	pf, err := p.ParseSource("UserController.java", controllerSource)
	require.NoError(t, err)
	assert.Equal(t, "com.example.api", pf.Package)
	require.Len(t, pf.Classes, 1)

	class := pf.Classes[0]
	assert.Equal(t, "UserController", class.Name)
	assert.Contains(t, class.Doc, "User management endpoints.")

	controller := class.Annotation("Controller")
	require.NotNil(t, controller)
	assert.Equal(t, "/users", controller.Value())

	tag := class.Annotation("Tag")
	require.NotNil(t, tag)
	assert.Equal(t, "users", tag.StringValue("name"))
}

func TestParseMethodsAndParameters(t *testing.T) {
	p := NewJavaParser()
	defer p.Close()

	pf, err := p.ParseSource("UserController.java", controllerSource)
	require.NoError(t, err)
	class := pf.Classes[0]
	require.Len(t, class.Methods, 2)

	show := class.Methods[0]
	assert.Equal(t, "show", show.Name)
	assert.Equal(t, "HttpResponse<User>", show.ReturnType)
	assert.Contains(t, show.Doc, "@param id the user identifier")
	get := show.Annotation("Get")
	require.NotNil(t, get)
	assert.Equal(t, "/{id}", get.Value())
	require.Len(t, show.Parameters, 1)
	assert.Equal(t, "id", show.Parameters[0].Name)
	assert.Equal(t, "Long", show.Parameters[0].Type)

	create := class.Methods[1]
	op := create.Annotation("Operation")
	require.NotNil(t, op)
	assert.Equal(t, "createUser", op.StringValue("operationId"))
	assert.True(t, op.BoolValue("deprecated"))

	post := create.Annotation("Post")
	require.NotNil(t, post)
	consumes := post.StringValues("consumes")
	assert.Equal(t, []string{"MediaType.APPLICATION_JSON", "MediaType.APPLICATION_XML"}, consumes)

	require.Len(t, create.Parameters, 2)
	body := create.Parameters[0]
	require.NotNil(t, body.Annotation("Body"))
	header := create.Parameters[1]
	h := header.Annotation("Header")
	require.NotNil(t, h)
	assert.Equal(t, "X-Tenant", h.StringValue("name"))
}

func TestParseNestedAnnotations(t *testing.T) {
	p := NewJavaParser()
	defer p.Close()

	source := `package com.example;

public class PingController {
    @Post
    @Callback(name = "onEvent", callbackUrlExpression = "{$request.body#/url}",
        operation = {@Operation(method = "post", summary = "delivery")})
    public void subscribe(String url) {
    }
}
`
	pf, err := p.ParseSource("PingController.java", source)
	require.NoError(t, err)

	cb := pf.Classes[0].Methods[0].Annotation("Callback")
	require.NotNil(t, cb)
	assert.Equal(t, "onEvent", cb.StringValue("name"))

	ops, ok := cb.Values["operation"].([]interface{})
	require.True(t, ok)
	require.Len(t, ops, 1)
	nested, ok := ops[0].(*JavaAnnotation)
	require.True(t, ok)
	assert.Equal(t, "Operation", nested.Name)
	assert.Equal(t, "post", nested.StringValue("method"))
	assert.Equal(t, "delivery", nested.StringValue("summary"))
}

func TestParseFieldsForSchemaExtraction(t *testing.T) {
	p := NewJavaParser()
	defer p.Close()

	source := `package com.example;

@Introspected
public class User {
    /** Unique identifier. */
    private Long id;

    @Nullable
    private String nickname;

    private List<String> roles;
}
`
	pf, err := p.ParseSource("User.java", source)
	require.NoError(t, err)

	class := pf.Classes[0]
	require.Len(t, class.Fields, 3)
	assert.Equal(t, "id", class.Fields[0].Name)
	assert.Equal(t, "Long", class.Fields[0].Type)
	assert.Contains(t, class.Fields[0].Doc, "Unique identifier.")
	require.NotNil(t, class.Fields[1].Annotation("Nullable"))
	assert.Equal(t, "List<String>", class.Fields[2].Type)
}
