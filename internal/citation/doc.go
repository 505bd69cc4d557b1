// Package citation resolves DOIs to formatted bibliography entries through
// DOI content negotiation.
package citation
