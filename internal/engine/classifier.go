// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package engine

import (
	"fmt"

	"github.com/anno2spec/anno2spec/internal/annotation"
	"github.com/anno2spec/anno2spec/internal/javadoc"
	"github.com/anno2spec/anno2spec/internal/uritemplate"
	"github.com/anno2spec/anno2spec/internal/util"
	"github.com/anno2spec/anno2spec/pkg/types"
)

// candidate is the per-parameter classification state threaded through
// the binding rules.
type candidate struct {
	param     *types.ParameterDescriptor
	variables map[string]types.PathVariable
}

// errUnboundVariable aborts the whole route: an explicit path binding
// named a variable the template does not declare.
type errUnboundVariable struct {
	name string
}

func (e *errUnboundVariable) Error() string {
	return fmt.Sprintf("path variable %q is not declared by the route template", e.name)
}

// bindingRule pairs a match predicate with a parameter constructor.
// Rules are evaluated in fixed precedence order; the first match wins.
type bindingRule struct {
	match func(*candidate) bool
	build func(*candidate) (*types.Parameter, error)
}

// bindingRules orders the classification precedence: template variable
// match, explicit path binding, header, cookie, query.
var bindingRules = []bindingRule{
	{
		match: func(c *candidate) bool {
			_, ok := c.variables[c.param.Name]
			return ok && !c.param.HasBindingOverride()
		},
		build: func(c *candidate) (*types.Parameter, error) {
			variable := c.variables[c.param.Name]
			p := &types.Parameter{Name: variable.Name, In: types.InPath}
			if variable.Query {
				p.In = types.InQuery
			}
			if variable.Exploded {
				p.Explode = types.BoolPtr(true)
			}
			return p, nil
		},
	},
	{
		match: func(c *candidate) bool { return c.param.PathBinding != nil },
		build: func(c *candidate) (*types.Parameter, error) {
			name := c.param.PathBinding.Name
			if name == "" {
				name = c.param.Name
			}
			variable, ok := c.variables[name]
			if !ok {
				return nil, &errUnboundVariable{name: name}
			}
			p := &types.Parameter{Name: name, In: types.InPath}
			if variable.Exploded {
				p.Explode = types.BoolPtr(true)
			}
			return p, nil
		},
	},
	{
		match: func(c *candidate) bool { return c.param.HeaderBinding != nil },
		build: func(c *candidate) (*types.Parameter, error) {
			name := c.param.HeaderBinding.Name
			if name == "" {
				name = util.Hyphenate(c.param.Name)
			}
			return &types.Parameter{Name: name, In: types.InHeader}, nil
		},
	},
	{
		match: func(c *candidate) bool { return c.param.CookieBinding != nil },
		build: func(c *candidate) (*types.Parameter, error) {
			name := c.param.CookieBinding.Name
			if name == "" {
				name = c.param.Name
			}
			return &types.Parameter{Name: name, In: types.InCookie}, nil
		},
	},
	{
		match: func(c *candidate) bool { return c.param.QueryBinding != nil },
		build: func(c *candidate) (*types.Parameter, error) {
			name := c.param.QueryBinding.Name
			if name == "" {
				name = c.param.Name
			}
			return &types.Parameter{Name: name, In: types.InQuery}, nil
		},
	},
}

// ignoredParameterTypes are never documented: framework plumbing and
// security principals resolved by the server at runtime.
var ignoredParameterTypes = map[string]bool{
	"Principal":      true,
	"Authentication": true,
	"HttpRequest":    true,
	"HttpHeaders":    true,
	"Session":        true,
}

func ignoredType(ref types.TypeRef) bool {
	return ignoredParameterTypes[ref.Name]
}

// classifyParameters walks the handler parameters in declaration order,
// attaching an explicit body parameter or building one path, query,
// header or cookie parameter per match. Returns false when the route
// must abort.
func (b *Builder) classifyParameters(doc *types.OpenAPI, op *types.Operation, route *types.RouteDescriptor,
	template *uritemplate.Template, comment *javadoc.Comment, loc Location) bool {

	variables := template.VariableMap()
	verb := types.NormalizeVerb(route.Verb)

	for i := range route.Parameters {
		param := &route.Parameters[i]
		if param.Hidden || ignoredType(param.Type) {
			continue
		}

		if param.Body && op.RequestBody == nil && types.PermitsRequestBody(verb) {
			op.RequestBody = b.bodyFromParameter(doc, route, param, comment, loc)
			continue
		}

		p, ok := b.classifyParameter(doc, param, variables, comment, loc)
		if !ok {
			return false
		}
		if p != nil {
			op.Parameters = append(op.Parameters, p)
		}
	}
	return true
}

// classifyParameter builds one parameter document, or nil when the
// parameter binds nowhere or is suppressed by its fragment. The second
// result is false when the route must abort.
func (b *Builder) classifyParameter(doc *types.OpenAPI, param *types.ParameterDescriptor,
	variables map[string]types.PathVariable, comment *javadoc.Comment, loc Location) (*types.Parameter, bool) {

	c := &candidate{param: param, variables: variables}

	var derived *types.Parameter
	for _, rule := range bindingRules {
		if !rule.match(c) {
			continue
		}
		p, err := rule.build(c)
		if err != nil {
			b.diags.Fail(err.Error(), loc)
			return nil, false
		}
		derived = p
		break
	}

	fragment := param.ParameterFragment
	var schemaFragment types.Fragment
	if fragment != nil {
		if fragment.Bool("hidden", false) {
			return nil, true
		}
		// the schema override binds onto the resolved schema during
		// finalization, not during the field merge
		schemaFragment = fragment.Fragment("schema")
		fragment = withoutKey(fragment, "schema")

		if derived == nil {
			p, err := annotation.ToParameter(fragment)
			if err != nil {
				b.diags.Warn(fmt.Sprintf("discarding parameter fragment for %q: %v", param.Name, err), loc)
			} else {
				derived = p
			}
		} else if err := annotation.ApplyParameter(derived, fragment); err != nil {
			b.diags.Warn(fmt.Sprintf("discarding parameter fragment for %q: %v", param.Name, err), loc)
		}
	}

	if derived == nil {
		return nil, true
	}
	b.finalizeParameter(doc, derived, param, schemaFragment, comment)
	return derived, true
}

// finalizeParameter fills the fields neither classification nor the
// fragment set, and resolves the parameter schema.
func (b *Builder) finalizeParameter(doc *types.OpenAPI, p *types.Parameter,
	param *types.ParameterDescriptor, schemaFragment types.Fragment, comment *javadoc.Comment) {

	if p.Name == "" {
		p.Name = param.Name
	}
	if p.Required == nil {
		p.Required = types.BoolPtr(!param.Nullable)
	}
	if p.Description == "" {
		p.Description = comment.ParamDescription(param.Name)
	}
	if p.Schema == nil {
		p.Schema = b.schemas.Resolve(doc, param.Type)
	}
	if schemaFragment != nil {
		if p.Schema == nil {
			p.Schema = &types.Schema{}
		}
		annotation.BindSchema(p.Schema, schemaFragment)
	}
	finalizeExplode(p)
}

// finalizeExplode is a hook for computing the serialization explode of a
// finalized parameter. The computation has no defined semantics yet, so
// the document passes through unchanged.
// TODO: derive explode from the collection shape of exploded template variables.
func finalizeExplode(*types.Parameter) {
}

// withoutKey returns a copy of the fragment minus one key.
func withoutKey(f types.Fragment, key string) types.Fragment {
	if !f.Has(key) {
		return f
	}
	out := make(types.Fragment, len(f))
	for k, v := range f {
		if k != key {
			out[k] = v
		}
	}
	return out
}
