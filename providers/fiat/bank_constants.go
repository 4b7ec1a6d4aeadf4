package fiat

// FallbackBanks is the last-resort bank directory used when the live
// list cannot be fetched and no cached copy exists.
var FallbackBanks = BankCollection{
	{Name: "Access Bank", Slug: "access-bank", Code: "044", Active: true, Country: "Nigeria", Currency: "NGN", Type: "nuban"},
	{Name: "Citibank Nigeria", Slug: "citibank-nigeria", Code: "023", Active: true, Country: "Nigeria", Currency: "NGN", Type: "nuban"},
	{Name: "Ecobank Nigeria", Slug: "ecobank-nigeria", Code: "050", Active: true, Country: "Nigeria", Currency: "NGN", Type: "nuban"},
	{Name: "Fidelity Bank", Slug: "fidelity-bank", Code: "070", Active: true, Country: "Nigeria", Currency: "NGN", Type: "nuban"},
	{Name: "First Bank of Nigeria", Slug: "first-bank-of-nigeria", Code: "011", Active: true, Country: "Nigeria", Currency: "NGN", Type: "nuban"},
	{Name: "First City Monument Bank", Slug: "first-city-monument-bank", Code: "214", Active: true, Country: "Nigeria", Currency: "NGN", Type: "nuban"},
	{Name: "Globus Bank", Slug: "globus-bank", Code: "00103", Active: true, Country: "Nigeria", Currency: "NGN", Type: "nuban"},
	{Name: "Guaranty Trust Bank", Slug: "guaranty-trust-bank", Code: "058", Active: true, Country: "Nigeria", Currency: "NGN", Type: "nuban"},
	{Name: "Keystone Bank", Slug: "keystone-bank", Code: "082", Active: true, Country: "Nigeria", Currency: "NGN", Type: "nuban"},
	{Name: "Kuda Bank", Slug: "kuda-bank", Code: "50211", Active: true, Country: "Nigeria", Currency: "NGN", Type: "nuban"},
	{Name: "Polaris Bank", Slug: "polaris-bank", Code: "076", Active: true, Country: "Nigeria", Currency: "NGN", Type: "nuban"},
	{Name: "Providus Bank", Slug: "providus-bank", Code: "101", Active: true, Country: "Nigeria", Currency: "NGN", Type: "nuban"},
	{Name: "Stanbic IBTC Bank", Slug: "stanbic-ibtc-bank", Code: "221", Active: true, Country: "Nigeria", Currency: "NGN", Type: "nuban"},
	{Name: "Standard Chartered Bank", Slug: "standard-chartered-bank", Code: "068", Active: true, Country: "Nigeria", Currency: "NGN", Type: "nuban"},
	{Name: "Sterling Bank", Slug: "sterling-bank", Code: "232", Active: true, Country: "Nigeria", Currency: "NGN", Type: "nuban"},
	{Name: "TAJ Bank", Slug: "taj-bank", Code: "302", Active: true, Country: "Nigeria", Currency: "NGN", Type: "nuban"},
	{Name: "Union Bank of Nigeria", Slug: "union-bank-of-nigeria", Code: "032", Active: true, Country: "Nigeria", Currency: "NGN", Type: "nuban"},
	{Name: "United Bank For Africa", Slug: "united-bank-for-africa", Code: "033", Active: true, Country: "Nigeria", Currency: "NGN", Type: "nuban"},
	{Name: "Unity Bank", Slug: "unity-bank", Code: "215", Active: true, Country: "Nigeria", Currency: "NGN", Type: "nuban"},
	{Name: "Wema Bank", Slug: "wema-bank", Code: "035", Active: true, Country: "Nigeria", Currency: "NGN", Type: "nuban"},
	{Name: "Zenith Bank", Slug: "zenith-bank", Code: "057", Active: true, Country: "Nigeria", Currency: "NGN", Type: "nuban"},
}
