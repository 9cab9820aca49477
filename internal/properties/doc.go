// Package properties infers logical properties (ivar-like attributes) of a
// C++ class from the names and signatures of its member functions.
//
// The input is a frozen description of one class's methods (Function
// records); the output is an ordered list of Property records, each backed
// by the set of methods that collectively form a getter/setter/adder for
// one named attribute. Classification is purely name- and signature-driven:
// the package never inspects method bodies, templates, or inheritance.
package properties
