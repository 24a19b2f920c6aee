// Package definition loads form layouts from JSON or YAML authoring files.
//
// Authoring files mirror the stored form shape but let authors omit ids,
// labels, sizes and types:
//
//	title: Contact
//	sections:
//	  - label: Details
//	    rows:
//	      - - id: fullName
//	          required: true
//	          size: md
//	        - id: email
//	          type: email
//	          size: md
//
// Missing field labels are derived from the field id ("fullName" becomes
// "Full Name"), missing ids are generated and the result is checked with
// model.CheckStructure before it is returned.
package definition
