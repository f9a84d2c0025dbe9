package mock_pmm

// PMMSingleQuoteResponse is a single maker USDC -> WETH quote on ethereum.
const PMMSingleQuoteResponse = `
{
	"type": "121",
	"status": "QUOTE_SUCCESS",
	"quoteId": "2a9e7c1d-3c5b-41e4-b0b9-6d2d9f3a4e10",
	"chainId": 1,
	"approvalType": "Standard",
	"nativeToken": "ETH",
	"taker": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
	"receiver": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
	"expiry": 1760110167,
	"gasFee": {
		"native": "0",
		"usd": 0
	},
	"buyTokens": {
		"0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2": {
			"amount": "40000000000000000",
			"decimals": 18,
			"priceUsd": 2500,
			"symbol": "WETH"
		}
	},
	"sellTokens": {
		"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48": {
			"amount": "100000000",
			"decimals": 6,
			"priceUsd": 1,
			"symbol": "USDC"
		}
	},
	"settlementAddress": "0xbbbbbBB520d69a9775E85b458C58c648259FAD5F",
	"approvalTarget": "0xbbbbbBB520d69a9775E85b458C58c648259FAD5F",
	"requiredSignatures": [],
	"toSign": {
		"partner_id": 0,
		"expiry": 1760110167,
		"taker_address": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		"maker_address": "0x51C72848c68a965f66FA7a88855F9f7784502a7F",
		"maker_nonce": "1760109867123",
		"taker_token": "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		"maker_token": "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
		"taker_amount": "100000000",
		"maker_amount": "40000000000000000",
		"receiver": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		"packed_commands": "0"
	},
	"onchainOrderType": "SingleOrder",
	"partialFillOffset": 12
}`

// PMMMultiQuoteResponse is a one maker, two token quote on polygon.
const PMMMultiQuoteResponse = `
{
	"quoteId": "6f0c1c8e-7c39-4a0f-9e8d-0f9f5a0b7c21",
	"chainId": 137,
	"expiry": 1760110167,
	"buyTokens": {},
	"sellTokens": {},
	"toSign": {
		"partner_id": 0,
		"expiry": 1760110167,
		"taker_address": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		"maker_address": "0x51C72848c68a965f66FA7a88855F9f7784502a7F",
		"maker_nonce": "42",
		"taker_tokens": ["0xc2132D05D31c914a87C6611C10748AEb04B58e8F", "0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359"],
		"maker_tokens": ["0x7ceB23fD6bC0adD59E62ac25578270cFf1b9f619"],
		"taker_amounts": ["5000000", "5000000"],
		"maker_amounts": ["4000000000000000"],
		"receiver": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		"commands": "0x000002"
	},
	"onchainOrderType": "MultiOrder"
}`

// PMMAggregateQuoteResponse splits one trade across three makers, two tokens each.
const PMMAggregateQuoteResponse = `
{
	"quoteId": "c3b0a9f2-5a8d-4c1e-8f7b-2e4d6a9c1b03",
	"chainId": 42161,
	"expiry": 1760110167,
	"buyTokens": {},
	"sellTokens": {},
	"toSign": {
		"partner_id": 7,
		"expiry": 1760110167,
		"taker_address": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		"maker_addresses": [
			"0x51C72848c68a965f66FA7a88855F9f7784502a7F",
			"0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
			"0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"
		],
		"maker_nonces": ["11", "12", "13"],
		"taker_tokens": [
			["0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9", "0xaf88d065e77c8cC2239327C5EDb3A432268e5831"],
			["0xaf88d065e77c8cC2239327C5EDb3A432268e5831", "0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9"],
			["0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9", "0xaf88d065e77c8cC2239327C5EDb3A432268e5831"]
		],
		"maker_tokens": [
			["0x82aF49447D8a07e3bd95BD0d56f35241523fBab1", "0x2f2a2543B76A4166549F7aaB2e75Bef0aefC5B0f"],
			["0x82aF49447D8a07e3bd95BD0d56f35241523fBab1", "0x2f2a2543B76A4166549F7aaB2e75Bef0aefC5B0f"],
			["0x2f2a2543B76A4166549F7aaB2e75Bef0aefC5B0f", "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1"]
		],
		"taker_amounts": [
			["100", "200"],
			["300", "400"],
			["500", "600"]
		],
		"maker_amounts": [
			["1000", "2000"],
			["3000", "4000"],
			["5000", "6000"]
		],
		"receiver": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		"commands": "0x00000000"
	},
	"onchainOrderType": "AggregateOrder"
}`
